// internal/interfaces/http/handlers/handlers_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *memoryKV) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type fakeResolver struct {
	products map[uint]*catalog.Product
}

func (f *fakeResolver) ProductByID(_ context.Context, id uint) (*catalog.Product, error) {
	return f.products[id], nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("let-me-in"), bcrypt.MinCost)
	require.NoError(t, err)

	return &config.Config{
		App: config.AppConfig{Name: "Test Storefront"},
		Cart: config.CartConfig{
			TTL:           time.Hour,
			SessionCookie: "session_id",
			CookieMaxAge:  3600,
		},
		Admin: config.AdminConfig{
			Email:             "owner@example.com",
			PasswordHash:      string(hash),
			JWTSecret:         "0123456789abcdef0123456789abcdef",
			AccessTokenExpiry: time.Hour,
		},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
}

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := testConfig(t)

	resolver := &fakeResolver{products: map[uint]*catalog.Product{
		1: {ID: 1, Name: "Classic Tee", Price: 2000, Garment: "tshirt", InStock: true},
	}}
	store := cart.NewStore(newMemoryKV(), cfg.Cart.TTL)
	cartService := cart.NewService(store, resolver, cfg)
	handler := NewCartHandler(cartService, cfg)

	r := gin.New()
	r.GET("/cart", handler.GetCart)
	r.POST("/cart/items", handler.AddItem)
	r.GET("/cart/count", handler.GetCount)
	return r
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGetCartSetsSessionCookie(t *testing.T) {
	r := newCartRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Contains(t, cookies[0].Value, "session_")
}

func TestAddItemPersistsAcrossRequests(t *testing.T) {
	r := newCartRouter(t)

	payload, err := json.Marshal(&cart.AddItemRequest{
		ProductID:     1,
		Quantity:      2,
		SelectedColor: "Black",
		SelectedSize:  "M",
		PrintLocation: "front",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	// Same session sees the item on a later request
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/cart/count", nil)
	req.AddCookie(cookies[0])
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["count"])
}

func TestAddItemRejectsUnknownProduct(t *testing.T) {
	r := newCartRouter(t)

	payload, err := json.Marshal(&cart.AddItemRequest{
		ProductID:     99,
		Quantity:      1,
		SelectedColor: "Black",
		SelectedSize:  "M",
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminLogin(t *testing.T) {
	cfg := testConfig(t)
	handler := NewAuthHandler(cfg)

	r := gin.New()
	r.POST("/admin/login", handler.Login)

	login := func(email, password string) *httptest.ResponseRecorder {
		payload, err := json.Marshal(gin.H{"email": email, "password": password})
		require.NoError(t, err)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/admin/login", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := login("owner@example.com", "let-me-in")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	data := body["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])

	assert.Equal(t, http.StatusUnauthorized, login("owner@example.com", "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, login("intruder@example.com", "let-me-in").Code)
}

func TestMetaEndpoints(t *testing.T) {
	handler := NewMetaHandler(testConfig(t))

	r := gin.New()
	r.GET("/meta/fonts", handler.GetFonts)
	r.GET("/meta/sizes", handler.GetSizes)
	r.GET("/meta/colors", handler.GetColors)
	r.GET("/meta/shirt-styles", handler.GetShirtStyles)

	get := func(path string) map[string]interface{} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)
		return decodeBody(t, w)
	}

	fonts := get("/meta/fonts")["data"].([]interface{})
	assert.Len(t, fonts, 5)

	sizes := get("/meta/sizes")["data"].([]interface{})
	assert.Len(t, sizes, 8)
	xxl := sizes[4].(map[string]interface{})
	assert.Equal(t, "2XL", xxl["id"])
	assert.Equal(t, float64(200), xxl["extra_cost"])

	colors := get("/meta/colors")["data"].([]interface{})
	assert.Contains(t, colors, "Heather Gray")

	styles := get("/meta/shirt-styles")["data"].([]interface{})
	require.Len(t, styles, 3)
	sweatshirt := styles[2].(map[string]interface{})
	assert.Equal(t, "sweatshirt", sweatshirt["id"])
	assert.Equal(t, float64(2500), sweatshirt["base_price"])
}

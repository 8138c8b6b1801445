// internal/domain/pricing/pricing_test.go
package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteSingleSide(t *testing.T) {
	tests := []struct {
		name     string
		garment  Garment
		size     string
		quantity int
		want     int64
	}{
		{"tshirt medium single", GarmentTShirt, "M", 1, 2000},
		{"tshirt 2XL pair", GarmentTShirt, "2XL", 2, 4400},
		{"vneck large", GarmentVNeck, "L", 1, 2000},
		{"sweatshirt 3XL", GarmentSweatshirt, "3XL", 1, 2900},
		{"sweatshirt 5XL bulk", GarmentSweatshirt, "5XL", 3, 9900},
		{"regular 4XL", GarmentRegular, "4XL", 1, 2600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.garment, tt.size, PrintFront, tt.quantity))
		})
	}
}

func TestQuoteMatchesBasePlusSurcharge(t *testing.T) {
	garments := []Garment{GarmentTShirt, GarmentRegular, GarmentVNeck, GarmentSweatshirt}
	sizes := []string{"S", "M", "L", "XL", "2XL", "3XL", "4XL", "5XL"}

	for _, g := range garments {
		for _, s := range sizes {
			for q := 1; q <= 4; q++ {
				want := (BasePrice(g) + SizeSurcharge(s)) * int64(q)
				assert.Equal(t, want, Quote(g, s, PrintFront, q), "garment=%s size=%s qty=%d", g, s, q)
				assert.Equal(t, want, Quote(g, s, PrintBack, q), "back prints share the single-side price")
			}
		}
	}
}

func TestQuoteBothReplacesBase(t *testing.T) {
	// Front-and-back is its own price point, not base plus a flat fee:
	// a t-shirt gains 500 while a sweatshirt also gains 500 here, but
	// the tables are independent and must be read as such.
	assert.Equal(t, int64(2500), Quote(GarmentTShirt, "M", PrintBoth, 1))
	assert.Equal(t, int64(3000), Quote(GarmentSweatshirt, "M", PrintBoth, 1))

	for _, g := range []Garment{GarmentTShirt, GarmentSweatshirt} {
		for _, s := range []string{"M", "2XL", "5XL"} {
			want := (BothPrice(g) + SizeSurcharge(s)) * 2
			assert.Equal(t, want, Quote(g, s, PrintBoth, 2))
		}
	}
}

func TestDollarScenarios(t *testing.T) {
	// $20 shirt, 2XL (+$2), front, qty 2 -> $44.
	assert.Equal(t, int64(4400), Quote(GarmentTShirt, "2XL", PrintFront, 2))
	// Front-and-back t-shirt at $25, size M, qty 1 -> $25.
	assert.Equal(t, int64(2500), Quote(GarmentTShirt, "M", PrintBoth, 1))
}

func TestSurchargeMonotone(t *testing.T) {
	ordered := []string{"S", "M", "L", "XL", "2XL", "3XL", "4XL", "5XL"}
	var prev int64
	for _, size := range ordered {
		cur := SizeSurcharge(size)
		assert.GreaterOrEqual(t, cur, prev, "surcharge must not decrease at %s", size)
		prev = cur
	}
}

func TestUnknownInputsFallBack(t *testing.T) {
	assert.Equal(t, defaultBasePrice, BasePrice("tank-top"))
	assert.Equal(t, defaultBothPrice, BothPrice("tank-top"))
	assert.Equal(t, int64(0), SizeSurcharge("XXS"))
	assert.Equal(t, int64(2000), Quote("tank-top", "XXS", "sleeve", 1))
}

func TestNonPositiveQuantity(t *testing.T) {
	assert.Equal(t, int64(0), Quote(GarmentTShirt, "M", PrintFront, 0))
	assert.Equal(t, int64(0), Quote(GarmentTShirt, "M", PrintFront, -3))
}

func TestOptionTablesAgreeWithEngine(t *testing.T) {
	for _, style := range Styles() {
		assert.Equal(t, BasePrice(Garment(style.ID)), style.BasePrice)
	}
	for _, size := range Sizes() {
		assert.Equal(t, SizeSurcharge(size.ID), size.ExtraCost)
	}
}

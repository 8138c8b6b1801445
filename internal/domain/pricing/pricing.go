// internal/domain/pricing/pricing.go
package pricing

// Package pricing computes garment prices from fixed lookup tables.
// All amounts are in cents. Every function here is pure: no state, no
// errors, deterministic for identical inputs, so callers can quote
// prices for preview as often as they like.

// Garment identifies the garment type a design is printed on.
type Garment string

const (
	GarmentTShirt     Garment = "tshirt"
	GarmentRegular    Garment = "regular"
	GarmentVNeck      Garment = "vneck"
	GarmentSweatshirt Garment = "sweatshirt"
)

// PrintLocation identifies which sides of the garment carry the design.
type PrintLocation string

const (
	PrintFront PrintLocation = "front"
	PrintBack  PrintLocation = "back"
	PrintBoth  PrintLocation = "both"
)

// basePrices maps garment type to the single-side base price.
var basePrices = map[Garment]int64{
	GarmentTShirt:     2000,
	GarmentRegular:    2000,
	GarmentVNeck:      2000,
	GarmentSweatshirt: 2500,
}

// bothPrices maps garment type to the front-and-back price. This is a
// distinct price point that replaces the base price entirely, not a
// surcharge on top of it.
var bothPrices = map[Garment]int64{
	GarmentTShirt:     2500,
	GarmentRegular:    2500,
	GarmentVNeck:      2500,
	GarmentSweatshirt: 3000,
}

// sizeSurcharges maps sizes above XL to their extra cost per unit.
// Sizes at or below XL carry no surcharge.
var sizeSurcharges = map[string]int64{
	"2XL": 200,
	"3XL": 400,
	"4XL": 600,
	"5XL": 800,
}

// Fallbacks for unrecognized inputs. An unknown garment is priced as a
// regular t-shirt and an unknown size carries no surcharge; unknown
// print locations are priced single-side. The storefront accepts
// whatever the catalog says a product is, so pricing must never fail.
const (
	defaultBasePrice int64 = 2000
	defaultBothPrice int64 = 2500
)

// BasePrice returns the single-side base price for a garment type.
func BasePrice(garment Garment) int64 {
	if price, ok := basePrices[garment]; ok {
		return price
	}
	return defaultBasePrice
}

// BothPrice returns the front-and-back price for a garment type.
func BothPrice(garment Garment) int64 {
	if price, ok := bothPrices[garment]; ok {
		return price
	}
	return defaultBothPrice
}

// SizeSurcharge returns the per-unit extra cost for a size.
func SizeSurcharge(size string) int64 {
	return sizeSurcharges[size]
}

// UnitPrice returns the fully-loaded per-unit price for one garment:
// the effective base (replaced by the front-and-back price when
// location is both) plus the size surcharge.
func UnitPrice(garment Garment, size string, location PrintLocation) int64 {
	base := BasePrice(garment)
	if location == PrintBoth {
		base = BothPrice(garment)
	}
	return base + SizeSurcharge(size)
}

// Quote returns the total price for a quantity of identically
// configured garments. Quantity multiplies the fully-loaded unit
// price, surcharges included. Quantities below one quote as zero.
func Quote(garment Garment, size string, location PrintLocation, quantity int) int64 {
	if quantity < 1 {
		return 0
	}
	return UnitPrice(garment, size, location) * int64(quantity)
}

// StyleOption describes a purchasable garment style with its base price,
// served to the storefront so displayed prices always match the tables
// the engine charges from.
type StyleOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
}

// SizeOption describes an available size and its surcharge.
type SizeOption struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ExtraCost int64  `json:"extra_cost"`
}

// Styles returns the orderable garment styles.
func Styles() []StyleOption {
	return []StyleOption{
		{ID: "regular", Name: "Regular T-Shirt", BasePrice: BasePrice(GarmentRegular)},
		{ID: "vneck", Name: "V-Neck T-Shirt", BasePrice: BasePrice(GarmentVNeck)},
		{ID: "sweatshirt", Name: "Sweatshirt", BasePrice: BasePrice(GarmentSweatshirt)},
	}
}

// Sizes returns the available sizes in ascending order with surcharges.
func Sizes() []SizeOption {
	return []SizeOption{
		{ID: "S", Name: "Small", ExtraCost: 0},
		{ID: "M", Name: "Medium", ExtraCost: 0},
		{ID: "L", Name: "Large", ExtraCost: 0},
		{ID: "XL", Name: "Extra Large", ExtraCost: 0},
		{ID: "2XL", Name: "2X Large", ExtraCost: SizeSurcharge("2XL")},
		{ID: "3XL", Name: "3X Large", ExtraCost: SizeSurcharge("3XL")},
		{ID: "4XL", Name: "4X Large", ExtraCost: SizeSurcharge("4XL")},
		{ID: "5XL", Name: "5X Large", ExtraCost: SizeSurcharge("5XL")},
	}
}

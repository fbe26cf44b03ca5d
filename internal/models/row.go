// Package models defines data structures for the converter pipeline.
package models

// OptionSlots is the number of option column pairs in a Shopify export.
const OptionSlots = 3

// Row is one line of a Shopify product export. Several rows may share a
// Handle; together they form one product with one row per variant.
type Row struct {
	Handle         string
	Title          string
	BodyHTML       string
	Tags           string
	ImageSrc       string
	VariantImage   string
	VariantPrice   string
	CompareAtPrice string
	CostPerItem    string

	// OptionNames and OptionValues mirror the Option1..Option3 Name/Value
	// column pairs. Only the representative row carries the names.
	OptionNames  [OptionSlots]string
	OptionValues [OptionSlots]string

	// Passthrough holds columns that are copied to the output unchanged
	// (SKU, weight, inventory policy, shipping and tax flags, ...).
	Passthrough map[string]string
}

// Pass returns a passthrough column value, or "" if the column was absent.
func (r Row) Pass(column string) string {
	return r.Passthrough[column]
}

// OptionAxis is one named product dimension (e.g. Color) together with the
// distinct values observed across a product's variants.
type OptionAxis struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`

	// Slot is the Option1..3 column pair the axis was read from.
	Slot int `json:"-"`
}

// OutputRecord is one line of the Medusa seed file: the original row plus
// the product-level fields propagated from its group and the variant-level
// derived fields.
type OutputRecord struct {
	Row Row

	// Group-derived, identical for every variant of a product.
	Description    string
	Categories     []string
	Images         []string
	ProductOptions string // compact JSON: [{"name":...,"values":[...]}]

	// Variant-derived, computed independently per row.
	VariantOptions string // compact JSON: {"Color":"Red"}
	PriceAmounts   map[string]int64
	CompareAtMinor int64
	CostMinor      int64
}

package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"medusaseed/internal/config"
	"medusaseed/internal/models"
)

// Writer emits consolidated records as a Medusa seed CSV with a fixed
// column set: pass-through export fields, the derived Medusa_* fields, and
// one minor-unit amount column per configured currency.
type Writer struct {
	currencies []config.Currency
	base       config.Currency
}

// NewWriter creates a writer for the configured pricing setup.
func NewWriter(pricing config.PricingConfig) *Writer {
	base, _ := pricing.Base()

	return &Writer{
		currencies: pricing.Currencies,
		base:       base,
	}
}

// Columns returns the output header, in file order.
func (w *Writer) Columns() []string {
	columns := []string{colHandle, colTitle}
	columns = append(columns, PassthroughColumns...)

	// Original price columns are kept for reference next to the converted
	// amounts.
	columns = append(columns, colVariantPrice, colCompareAtPrice, colCostPerItem)

	columns = append(columns,
		"Medusa_Description",
		"Medusa_Categories",
		"Medusa_Images",
		"Medusa_Product_Options",
		"Medusa_Variant_Options",
	)

	for _, cur := range w.currencies {
		columns = append(columns, priceColumn(cur.Code))
	}

	columns = append(columns,
		"Medusa_Price_Currency",
		fmt.Sprintf("Medusa_Compare_At_Price_%s_Amount", strings.ToUpper(w.base.Code)),
		fmt.Sprintf("Medusa_Cost_Per_Item_%s_Amount", strings.ToUpper(w.base.Code)),
	)

	return columns
}

// Record flattens one output record into CSV fields matching Columns.
func (w *Writer) Record(rec models.OutputRecord) []string {
	fields := []string{rec.Row.Handle, rec.Row.Title}

	for _, name := range PassthroughColumns {
		fields = append(fields, rec.Row.Pass(name))
	}

	fields = append(fields, rec.Row.VariantPrice, rec.Row.CompareAtPrice, rec.Row.CostPerItem)

	fields = append(fields,
		rec.Description,
		strings.Join(rec.Categories, ", "),
		strings.Join(rec.Images, ", "),
		rec.ProductOptions,
		rec.VariantOptions,
	)

	for _, cur := range w.currencies {
		fields = append(fields, strconv.FormatInt(rec.PriceAmounts[cur.Code], 10))
	}

	fields = append(fields,
		strings.ToLower(w.base.Code),
		strconv.FormatInt(rec.CompareAtMinor, 10),
		strconv.FormatInt(rec.CostMinor, 10),
	)

	return fields
}

// WriteRecords writes the full seed file. The caller consolidates
// everything in memory first, so a failed run never leaves partial output
// behind an earlier successful write.
func (w *Writer) WriteRecords(path string, records []models.OutputRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	cw := csv.NewWriter(f)

	if err := cw.Write(w.Columns()); err != nil {
		f.Close()

		return fmt.Errorf("write header: %w", err)
	}

	for _, rec := range records {
		if err := cw.Write(w.Record(rec)); err != nil {
			f.Close()

			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		f.Close()

		return fmt.Errorf("flush output: %w", err)
	}

	return f.Close()
}

func priceColumn(code string) string {
	return fmt.Sprintf("Medusa_Price_%s_Amount", strings.ToUpper(code))
}

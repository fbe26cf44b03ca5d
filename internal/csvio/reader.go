// Package csvio reads Shopify product exports and writes Medusa seed
// files. All I/O is whole-file and in-memory; nothing streams.
package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"medusaseed/internal/models"
)

// Shopify export column names the converter interprets.
const (
	colHandle         = "Handle"
	colTitle          = "Title"
	colBodyHTML       = "Body (HTML)"
	colTags           = "Tags"
	colImageSrc       = "Image Src"
	colVariantImage   = "Variant Image"
	colVariantPrice   = "Variant Price"
	colCompareAtPrice = "Variant Compare At Price"
	colCostPerItem    = "Cost per item"
)

// PassthroughColumns are copied from the export to the seed file unchanged.
var PassthroughColumns = []string{
	"Vendor",
	"Variant SKU",
	"Variant Grams",
	"Variant Inventory Tracker",
	"Variant Inventory Policy",
	"Variant Fulfillment Service",
	"Variant Requires Shipping",
	"Variant Taxable",
	"Variant Barcode",
	"Status",
}

// ReadRows loads every row of a Shopify export CSV into memory. Shopify
// CSVs occasionally carry loose quoting and a UTF-8 BOM, both of which are
// tolerated. Columns missing from the header read as empty on every row;
// only an unparseable file is an error.
func ReadRows(path string) ([]models.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	rows := make([]models.Row, 0, len(records)-1)

	for _, record := range records[1:] {
		rows = append(rows, rowFromRecord(record, index))
	}

	return rows, nil
}

func rowFromRecord(record []string, index map[string]int) models.Row {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}

		return record[i]
	}

	row := models.Row{
		Handle:         field(colHandle),
		Title:          field(colTitle),
		BodyHTML:       field(colBodyHTML),
		Tags:           field(colTags),
		ImageSrc:       field(colImageSrc),
		VariantImage:   field(colVariantImage),
		VariantPrice:   field(colVariantPrice),
		CompareAtPrice: field(colCompareAtPrice),
		CostPerItem:    field(colCostPerItem),
		Passthrough:    make(map[string]string, len(PassthroughColumns)),
	}

	for slot := 0; slot < models.OptionSlots; slot++ {
		n := strconv.Itoa(slot + 1)
		row.OptionNames[slot] = field("Option" + n + " Name")
		row.OptionValues[slot] = field("Option" + n + " Value")
	}

	for _, name := range PassthroughColumns {
		row.Passthrough[name] = field(name)
	}

	return row
}

package converter

import (
	"reflect"
	"testing"

	"medusaseed/internal/config"
	"medusaseed/internal/models"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Categories = testCategories()

	return cfg
}

func mugRows() []models.Row {
	return []models.Row{
		{
			Handle:       "mug-01",
			Title:        "Ceramic Mug",
			BodyHTML:     `<p>A sturdy mug.</p><img src="https://cdn.example.com/body.jpg">`,
			Tags:         "kitchen, gift",
			ImageSrc:     "https://cdn.example.com/main.jpg",
			VariantImage: "https://cdn.example.com/red.jpg",
			VariantPrice: "19.99",
			OptionNames:  [3]string{"Color", "", ""},
			OptionValues: [3]string{"Red", "", ""},
		},
		{
			Handle:       "mug-01",
			VariantImage: "https://cdn.example.com/blue.jpg",
			VariantPrice: "21.99",
			OptionValues: [3]string{"Blue", "", ""},
		},
	}
}

func TestConsolidator_Consolidate(t *testing.T) {
	c := NewConsolidator(testConfig())

	records, products := c.Consolidate(mugRows())

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if products != 1 {
		t.Errorf("Expected 1 product, got %d", products)
	}

	first, second := records[0], records[1]

	// Group-derived fields are identical on every variant.
	if first.Description != "A sturdy mug." || second.Description != first.Description {
		t.Errorf("Description mismatch: %q / %q", first.Description, second.Description)
	}

	if !reflect.DeepEqual(first.Categories, []string{"Merch"}) {
		t.Errorf("Categories = %v, want [Merch]", first.Categories)
	}

	if !reflect.DeepEqual(second.Categories, first.Categories) {
		t.Errorf("Variant categories differ: %v / %v", first.Categories, second.Categories)
	}

	wantImages := []string{
		"https://cdn.example.com/main.jpg",
		"https://cdn.example.com/body.jpg",
		"https://cdn.example.com/red.jpg",
		"https://cdn.example.com/blue.jpg",
	}
	if !reflect.DeepEqual(first.Images, wantImages) {
		t.Errorf("Images = %v, want %v", first.Images, wantImages)
	}

	wantOptions := `[{"name":"Color","values":["Blue","Red"]}]`
	if first.ProductOptions != wantOptions || second.ProductOptions != wantOptions {
		t.Errorf("ProductOptions = %s / %s, want %s", first.ProductOptions, second.ProductOptions, wantOptions)
	}

	// Variant-derived fields are distinct per row.
	if first.VariantOptions != `{"Color":"Red"}` {
		t.Errorf("First VariantOptions = %s", first.VariantOptions)
	}

	if second.VariantOptions != `{"Color":"Blue"}` {
		t.Errorf("Second VariantOptions = %s", second.VariantOptions)
	}

	if first.PriceAmounts["USD"] != 1999 {
		t.Errorf("First USD amount = %d, want 1999", first.PriceAmounts["USD"])
	}

	if second.PriceAmounts["USD"] != 2199 {
		t.Errorf("Second USD amount = %d, want 2199", second.PriceAmounts["USD"])
	}
}

func TestConsolidator_CardinalityPreserved(t *testing.T) {
	c := NewConsolidator(testConfig())

	records, _ := c.Consolidate(nil)
	if len(records) != 0 {
		t.Errorf("Expected empty output for empty input, got %d records", len(records))
	}

	rows := append(mugRows(), models.Row{Handle: "shirt-01", Title: "Basic Tee"})

	records, products := c.Consolidate(rows)
	if len(records) != len(rows) {
		t.Errorf("Expected %d records, got %d", len(rows), len(records))
	}

	if products != 2 {
		t.Errorf("Expected 2 products, got %d", products)
	}
}

func TestConsolidator_InterleavedGroupsKeepRowOrder(t *testing.T) {
	c := NewConsolidator(testConfig())

	rows := []models.Row{
		{Handle: "a", Title: "Mug A", VariantPrice: "1.00"},
		{Handle: "b", Title: "Poster B"},
		{Handle: "a", VariantPrice: "2.00"},
	}

	records, products := c.Consolidate(rows)

	if products != 2 {
		t.Fatalf("Expected 2 products, got %d", products)
	}

	// Output index i corresponds to input row i.
	if records[0].Row.Handle != "a" || records[1].Row.Handle != "b" || records[2].Row.Handle != "a" {
		t.Errorf("Row order not preserved: %s, %s, %s",
			records[0].Row.Handle, records[1].Row.Handle, records[2].Row.Handle)
	}

	// Both "a" rows carry the same group-derived fields.
	if !reflect.DeepEqual(records[0].Categories, records[2].Categories) {
		t.Errorf("Group fields differ across the group: %v / %v",
			records[0].Categories, records[2].Categories)
	}
}

func TestConsolidator_ImageDeduplication(t *testing.T) {
	c := NewConsolidator(testConfig())

	url := "https://cdn.example.com/same.jpg"

	rows := []models.Row{
		{Handle: "mug-02", Title: "Travel Mug", ImageSrc: url, VariantImage: url},
		{Handle: "mug-02", VariantImage: url},
	}

	records, _ := c.Consolidate(rows)

	if !reflect.DeepEqual(records[0].Images, []string{url}) {
		t.Errorf("Images = %v, want exactly one %s", records[0].Images, url)
	}
}

func TestConsolidator_BlankHandlesMerged(t *testing.T) {
	c := NewConsolidator(testConfig())

	rows := []models.Row{
		{Handle: "", Title: "Ceramic Mug"},
		{Handle: "", Title: "Basic Tee"},
	}

	records, products := c.Consolidate(rows)

	// Historical behavior: unrelated blank-handle rows form one group and
	// share the first row's derived fields.
	if products != 1 {
		t.Fatalf("Expected 1 merged group, got %d", products)
	}

	if !reflect.DeepEqual(records[1].Categories, records[0].Categories) {
		t.Errorf("Merged group fields differ: %v / %v", records[0].Categories, records[1].Categories)
	}
}

func TestConsolidator_BlankHandleSingletons(t *testing.T) {
	cfg := testConfig()
	cfg.Grouping.BlankHandleMode = config.BlankHandleSingleton

	c := NewConsolidator(cfg)

	rows := []models.Row{
		{Handle: "", Title: "Ceramic Mug"},
		{Handle: "", Title: "Basic Tee"},
	}

	records, products := c.Consolidate(rows)

	if products != 2 {
		t.Fatalf("Expected 2 singleton groups, got %d", products)
	}

	if !reflect.DeepEqual(records[0].Categories, []string{"Merch"}) {
		t.Errorf("First categories = %v, want [Merch]", records[0].Categories)
	}

	if !reflect.DeepEqual(records[1].Categories, []string{"Shirts"}) {
		t.Errorf("Second categories = %v, want [Shirts]", records[1].Categories)
	}

	// Singleton products get a handle slugified from their title.
	if records[0].Row.Handle != "ceramic-mug" {
		t.Errorf("Generated handle = %q, want ceramic-mug", records[0].Row.Handle)
	}
}

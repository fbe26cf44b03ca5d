package converter

import (
	"medusaseed/internal/config"
	"medusaseed/internal/models"
	"medusaseed/pkg/utils"
)

// Consolidator groups flat export rows into products and derives the
// destination fields once per group, propagating them to every variant row.
type Consolidator struct {
	classifier     *Classifier
	currencies     []config.Currency
	base           config.Currency
	mergeBlank     bool
	generateHandle bool
}

// NewConsolidator creates a consolidator from the loaded configuration.
func NewConsolidator(cfg *config.Config) *Consolidator {
	base, _ := cfg.Pricing.Base()

	merged := cfg.Grouping.BlankHandlesMerged()

	return &Consolidator{
		classifier: NewClassifier(cfg.Categories),
		currencies: cfg.Pricing.Currencies,
		base:       base,
		mergeBlank: merged,
		// A generated handle only makes sense when a blank-handle row is
		// its own product; in merge mode unrelated rows share the group.
		generateHandle: !merged,
	}
}

// Consolidate derives one OutputRecord per input row. Cardinality and input
// order are preserved: records land at the same index as their source row,
// and rows sharing a Handle carry identical group-derived fields no matter
// where in the file they appear.
func (c *Consolidator) Consolidate(rows []models.Row) ([]models.OutputRecord, int) {
	records := make([]models.OutputRecord, len(rows))

	groups := c.partition(rows)

	for _, indices := range groups {
		c.deriveGroup(rows, indices, records)
	}

	return records, len(groups)
}

// partition splits row indices into groups by Handle, preserving first-seen
// order. All blank-handle rows form one group unless singleton mode is on.
func (c *Consolidator) partition(rows []models.Row) [][]int {
	var groups [][]int

	index := make(map[string]int)

	for i, row := range rows {
		if row.Handle == "" && !c.mergeBlank {
			groups = append(groups, []int{i})

			continue
		}

		g, ok := index[row.Handle]
		if !ok {
			g = len(groups)
			index[row.Handle] = g
			groups = append(groups, nil)
		}

		groups[g] = append(groups[g], i)
	}

	return groups
}

// deriveGroup computes the group-level fields from the representative
// (first) row, then fills in every member record with those plus its own
// variant-level fields.
func (c *Consolidator) deriveGroup(rows []models.Row, indices []int, records []models.OutputRecord) {
	rep := rows[indices[0]]

	group := make([]models.Row, 0, len(indices))
	for _, i := range indices {
		group = append(group, rows[i])
	}

	description := StripHTML(rep.BodyHTML)
	categories := c.classifier.Classify(rep.Title, utils.SplitTags(rep.Tags))
	images := collectImages(rep, group)
	axes := ExtractAxes(group)
	productOptions := EncodeAxes(axes)

	handle := rep.Handle
	if handle == "" && c.generateHandle {
		handle = utils.Slugify(rep.Title)
	}

	for _, i := range indices {
		row := rows[i]
		row.Handle = handle

		records[i] = models.OutputRecord{
			Row:            row,
			Description:    description,
			Categories:     categories,
			Images:         images,
			ProductOptions: productOptions,
			VariantOptions: EncodeAssignment(VariantAssignment(row, axes)),
			PriceAmounts:   NormalizePrices(row.VariantPrice, c.currencies),
			CompareAtMinor: MinorUnits(NormalizeAmount(row.CompareAtPrice), c.base),
			CostMinor:      MinorUnits(NormalizeAmount(row.CostPerItem), c.base),
		}
	}
}

// collectImages builds a product's image set: the representative's primary
// image, every image embedded in its description markup, and each variant's
// own image, de-duplicated by exact URL with first-seen order kept.
func collectImages(rep models.Row, group []models.Row) []string {
	var images []string

	seen := make(map[string]bool)

	add := func(url string) {
		if url != "" && !seen[url] {
			seen[url] = true
			images = append(images, url)
		}
	}

	add(rep.ImageSrc)

	for _, url := range ExtractImageURLs(rep.BodyHTML) {
		add(url)
	}

	for _, row := range group {
		add(row.VariantImage)
	}

	return images
}

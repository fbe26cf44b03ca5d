package converter

import (
	"strings"

	"medusaseed/internal/config"
)

// Classifier infers destination category labels from product titles and
// tags using a static keyword table.
type Classifier struct {
	rules    []config.CategoryRule
	fallback string
}

// NewClassifier creates a classifier from the configured category rules.
func NewClassifier(cfg config.CategoriesConfig) *Classifier {
	return &Classifier{
		rules:    cfg.Rules,
		fallback: cfg.Fallback,
	}
}

// Classify returns every category whose keywords match the title or tags.
// A keyword matches the title as a case-insensitive substring and a tag
// only as a case-insensitive exact match. Duplicates are collapsed and the
// result keeps rule order. The result is never empty: when nothing matches
// it is the single fallback label.
func (c *Classifier) Classify(title string, tags []string) []string {
	titleLower := strings.ToLower(title)

	var matched []string

	seen := make(map[string]bool)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(titleLower, strings.ToLower(keyword)) {
				if !seen[rule.Name] {
					matched = append(matched, rule.Name)
					seen[rule.Name] = true
				}

				break
			}
		}
	}

	for _, tag := range tags {
		for _, rule := range c.rules {
			for _, keyword := range rule.Keywords {
				if strings.EqualFold(keyword, tag) {
					if !seen[rule.Name] {
						matched = append(matched, rule.Name)
						seen[rule.Name] = true
					}

					break
				}
			}
		}
	}

	if len(matched) == 0 {
		return []string{c.fallback}
	}

	return matched
}

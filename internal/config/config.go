// Package config provides configuration management for the converter.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Blank-handle grouping modes. In "merge" mode every row with an empty
// Handle lands in a single shared group, which is the literal behavior of
// the exports this tool was built against. "singleton" treats each such row
// as its own one-variant product instead.
const (
	BlankHandleMerge     = "merge"
	BlankHandleSingleton = "singleton"
)

// Configuration validation errors.
var (
	ErrNoCurrencies            = errors.New("pricing.currencies requires at least one entry")
	ErrMissingBaseCurrency     = errors.New("pricing.base_currency is required")
	ErrBaseCurrencyNotListed   = errors.New("pricing.base_currency must appear in pricing.currencies")
	ErrCurrencyMissingCode     = errors.New("currency code is required")
	ErrInvalidMultiplier       = errors.New("currency multiplier must be at least 1")
	ErrInvalidRate             = errors.New("currency rate must be non-negative")
	ErrCategoryMissingName     = errors.New("category rule requires a name")
	ErrCategoryMissingKeywords = errors.New("category rule requires at least one keyword")
	ErrMissingFallback         = errors.New("categories.fallback is required")
	ErrInvalidBlankHandleMode  = errors.New("grouping.blank_handle_mode must be 'merge' or 'singleton'")
	ErrInvalidPreviewRows      = errors.New("output.preview_rows must be non-negative")
	ErrInvalidLogLevel         = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete converter configuration.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Categories CategoriesConfig `yaml:"categories"`
	Pricing    PricingConfig    `yaml:"pricing"`
	Grouping   GroupingConfig   `yaml:"grouping"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// InputConfig defines where the Shopify export is read from.
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig defines where and how the seed file is written.
type OutputConfig struct {
	Path        string `yaml:"path"`
	PreviewRows int    `yaml:"preview_rows"`
}

// CategoryRule maps one category label to the keywords that select it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig defines the keyword classification table. Rules is
// ordered; matching categories are emitted in rule order.
type CategoriesConfig struct {
	Rules    []CategoryRule `yaml:"rules"`
	Fallback string         `yaml:"fallback"`
}

// Currency describes one target currency for price conversion.
type Currency struct {
	// Code is the ISO currency code, e.g. "USD".
	Code string `yaml:"code"`
	// Multiplier converts major units to minor units (100 for two-decimal
	// currencies, 1 for zero-decimal currencies such as XOF).
	Multiplier int64 `yaml:"multiplier"`
	// Rate converts from the base currency. Zero or omitted means 1.0,
	// i.e. the base currency itself.
	Rate float64 `yaml:"rate"`
}

// PricingConfig defines the base currency and conversion targets.
type PricingConfig struct {
	BaseCurrency string     `yaml:"base_currency"`
	Currencies   []Currency `yaml:"currencies"`
}

// GroupingConfig defines how rows are grouped into products.
type GroupingConfig struct {
	BlankHandleMode string `yaml:"blank_handle_mode"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	for i, rule := range c.Categories.Rules {
		if rule.Name == "" {
			return fmt.Errorf("%w: rules[%d]", ErrCategoryMissingName, i)
		}

		if len(rule.Keywords) == 0 {
			return fmt.Errorf("%w: rules[%d] (%s)", ErrCategoryMissingKeywords, i, rule.Name)
		}
	}

	if c.Categories.Fallback == "" {
		return ErrMissingFallback
	}

	if c.Pricing.BaseCurrency == "" {
		return ErrMissingBaseCurrency
	}

	if len(c.Pricing.Currencies) == 0 {
		return ErrNoCurrencies
	}

	for i, cur := range c.Pricing.Currencies {
		if cur.Code == "" {
			return fmt.Errorf("%w: currencies[%d]", ErrCurrencyMissingCode, i)
		}

		if cur.Multiplier < 1 {
			return fmt.Errorf("%w: currencies[%d] (%s)", ErrInvalidMultiplier, i, cur.Code)
		}

		if cur.Rate < 0 {
			return fmt.Errorf("%w: currencies[%d] (%s)", ErrInvalidRate, i, cur.Code)
		}
	}

	if _, ok := c.Pricing.Base(); !ok {
		return fmt.Errorf("%w: %s", ErrBaseCurrencyNotListed, c.Pricing.BaseCurrency)
	}

	switch c.Grouping.BlankHandleMode {
	case "", BlankHandleMerge, BlankHandleSingleton:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBlankHandleMode, c.Grouping.BlankHandleMode)
	}

	if c.Output.PreviewRows < 0 {
		return ErrInvalidPreviewRows
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// Base returns the currency entry matching the configured base currency.
func (p PricingConfig) Base() (Currency, bool) {
	for _, cur := range p.Currencies {
		if strings.EqualFold(cur.Code, p.BaseCurrency) {
			return cur, true
		}
	}

	return Currency{}, false
}

// BlankHandlesMerged reports whether blank-handle rows share one group.
func (g GroupingConfig) BlankHandlesMerged() bool {
	return g.BlankHandleMode != BlankHandleSingleton
}

// DefaultConfig returns the built-in configuration used when no config file
// is supplied. The keyword table and exchange rates are static
// operator-maintained constants, not live data; update the rates
// periodically if conversion accuracy matters.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			PreviewRows: 5,
		},
		Categories: CategoriesConfig{
			Fallback: "General",
			Rules: []CategoryRule{
				{Name: "Shirts", Keywords: []string{"shirt", "t-shirt", "tee"}},
				{Name: "Sweatshirts", Keywords: []string{"sweatshirt", "hoodie", "jumper"}},
				{Name: "Pants", Keywords: []string{"pants", "jeans", "trousers", "leggings", "shorts"}},
				{Name: "Merch", Keywords: []string{"merch", "merchandise", "mug", "poster", "keychain"}},
				{Name: "Adult", Keywords: []string{"adult", "lingerie", "intimate", "sexy", "thong", "bra"}},
				{Name: "Electronics", Keywords: []string{"electronic", "earbud", "charger", "smartwatch", "bluetooth", "headphone", "device", "gadget", "usb"}},
				{Name: "Home & Living", Keywords: []string{"home", "decor", "kitchen", "lamp", "light", "candle", "garden", "furniture"}},
				{Name: "Health & Wellness", Keywords: []string{"health", "wellness", "care", "steamers", "scar", "massage", "therapy", "beauty", "hair", "skin", "body", "medical", "fitness"}},
				{Name: "Women's Essentials", Keywords: []string{"women's", "wig", "cosmetic", "makeup", "feminine"}},
				{Name: "Men's Essentials", Keywords: []string{"men's", "grooming", "male"}},
			},
		},
		Pricing: PricingConfig{
			BaseCurrency: "USD",
			Currencies: []Currency{
				{Code: "USD", Multiplier: 100},
				{Code: "EUR", Multiplier: 100, Rate: 0.88},
				{Code: "CAD", Multiplier: 100, Rate: 1.37},
				{Code: "XOF", Multiplier: 1, Rate: 576.24},
			},
		},
		Grouping: GroupingConfig{
			BlankHandleMode: BlankHandleMerge,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

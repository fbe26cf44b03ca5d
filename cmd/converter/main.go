// Package main provides the Shopify-to-Medusa seed converter command-line
// tool.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"medusaseed/internal/config"
	"medusaseed/internal/converter"
	"medusaseed/internal/logger"
)

const defaultConfigPath = "configs/converter.yaml"

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file")
	inputPath := flag.String("input", "", "Path to Shopify product export CSV")
	outputPath := flag.String("output", "", "Path to Medusa seed CSV to write")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help {
		printUsage()
		os.Exit(0)
	}

	cfg := loadConfig(*configFile)

	input := *inputPath
	if input == "" {
		input = cfg.Input.Path
	}

	output := *outputPath
	if output == "" {
		output = cfg.Output.Path
	}

	if input == "" || output == "" {
		fmt.Println("Usage: converter -input <products.csv> -output <seed.csv>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	pipeline := converter.NewPipeline(cfg, log)

	summary, err := pipeline.Run(input, output)
	if err != nil {
		switch {
		case errors.Is(err, converter.ErrInputNotFound):
			fmt.Fprintf(os.Stderr, "❌ Input file not found: %s\n", input)
		case errors.Is(err, converter.ErrInputUnreadable):
			fmt.Fprintf(os.Stderr, "❌ Could not read input file: %v\n", err)
		default:
			fmt.Fprintf(os.Stderr, "❌ Conversion failed: %v\n", err)
		}

		os.Exit(1)
	}

	fmt.Printf("✅ Converted %d rows (%d products) → %s\n",
		summary.RowsRead, summary.Products, summary.OutputPath)

	if summary.Preview != "" {
		fmt.Println("\n--- Quick look at the first few rows ---")
		fmt.Print(summary.Preview)
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path == "" {
		return config.DefaultConfig()
	}

	fmt.Printf("⚙️  Loading configuration from: %s\n", path)

	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}

	return cfg
}

func printUsage() {
	fmt.Println("Usage: ./bin/converter [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  ./bin/converter -input products.csv -output medusa_seed_products.csv")
	fmt.Println("  ./bin/converter -config configs/converter.yaml")
}

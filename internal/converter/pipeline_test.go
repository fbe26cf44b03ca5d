package converter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"medusaseed/internal/logger"
)

const testExportCSV = `Handle,Title,Body (HTML),Tags,Option1 Name,Option1 Value,Variant SKU,Variant Price,Image Src,Variant Image,Status
mug-01,Ceramic Mug,<p>A sturdy mug.</p>,gift,Color,Red,MUG-R,19.99,https://cdn.example.com/main.jpg,,active
mug-01,,,,,Blue,MUG-B,21.99,,,active
tee-01,Basic Tee,,,Size,M,TEE-M,15.00,,,draft
`

func testPipeline() *Pipeline {
	return NewPipeline(testConfig(), logger.NewLogger("error"))
}

func TestPipeline_Run(t *testing.T) {
	tmpDir := t.TempDir()

	inputPath := filepath.Join(tmpDir, "products.csv")
	outputPath := filepath.Join(tmpDir, "seed.csv")

	if err := os.WriteFile(inputPath, []byte(testExportCSV), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	summary, err := testPipeline().Run(inputPath, outputPath)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.RowsRead != 3 {
		t.Errorf("RowsRead = %d, want 3", summary.RowsRead)
	}

	if summary.Products != 2 {
		t.Errorf("Products = %d, want 2", summary.Products)
	}

	if summary.Preview == "" {
		t.Error("Expected a preview with preview_rows > 0")
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Output not written: %v", err)
	}

	out := string(data)

	// Header + one line per input row.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("Output has %d lines, want 4", len(lines))
	}

	if !strings.Contains(lines[0], "Medusa_Price_USD_Amount") {
		t.Errorf("Header missing price column: %s", lines[0])
	}

	if !strings.Contains(out, "1999") {
		t.Error("Output missing converted USD amount 1999")
	}

	if !strings.Contains(out, `{""Color"":""Red""}`) && !strings.Contains(out, `{"Color":"Red"}`) {
		t.Error("Output missing variant option assignment")
	}
}

func TestPipeline_Run_InputNotFound(t *testing.T) {
	tmpDir := t.TempDir()

	outputPath := filepath.Join(tmpDir, "seed.csv")

	_, err := testPipeline().Run(filepath.Join(tmpDir, "missing.csv"), outputPath)
	if !errors.Is(err, ErrInputNotFound) {
		t.Fatalf("Expected ErrInputNotFound, got %v", err)
	}

	if _, statErr := os.Stat(outputPath); !os.IsNotExist(statErr) {
		t.Error("Output file must not be created when the input is missing")
	}
}

func TestPipeline_Run_InputUnreadable(t *testing.T) {
	tmpDir := t.TempDir()

	// A directory satisfies the existence check but cannot be read as CSV.
	_, err := testPipeline().Run(tmpDir, filepath.Join(tmpDir, "seed.csv"))
	if !errors.Is(err, ErrInputUnreadable) {
		t.Fatalf("Expected ErrInputUnreadable, got %v", err)
	}
}

func TestPipeline_Run_EmptyInput(t *testing.T) {
	tmpDir := t.TempDir()

	inputPath := filepath.Join(tmpDir, "empty.csv")
	outputPath := filepath.Join(tmpDir, "seed.csv")

	header := "Handle,Title\n"
	if err := os.WriteFile(inputPath, []byte(header), 0644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	summary, err := testPipeline().Run(inputPath, outputPath)
	if err != nil {
		t.Fatalf("Run failed on header-only input: %v", err)
	}

	if summary.RowsRead != 0 || summary.Products != 0 {
		t.Errorf("Summary = %+v, want zero rows and products", summary)
	}

	if _, statErr := os.Stat(outputPath); statErr != nil {
		t.Error("Header-only input should still produce an output file")
	}
}

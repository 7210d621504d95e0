package output

import (
	"math"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/aerotools/avlout/pkg/avlout/models"
	"github.com/xuri/excelize/v2"
)

func TestToXLSX(t *testing.T) {
	results := map[string]*models.Result{
		"b737-1.ft": {
			File:    "b737-1.ft",
			Format:  "ft",
			Scalars: models.Scalars{"CLtot": 1.5, "CDtot": math.NaN()},
		},
		"b737-1.fs": {
			File:   "b737-1.fs",
			Format: "fs",
			Strips: models.SurfaceColumns{
				"Wing": {"Yle": {1, 4}, "Chord": {2, 5}},
			},
		},
		"b737.eig": {
			File:        "b737.eig",
			Format:      "eig",
			Eigenvalues: models.Eigenvalues{"1": {{Re: -0.25, Im: 3}}},
		},
	}

	tmpFile := filepath.Join(t.TempDir(), "results.xlsx")
	if err := ToXLSX(results, tmpFile); err != nil {
		t.Fatalf("ToXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	expected := []string{"b737-1.fs", "b737-1.ft", "b737.eig"}
	if strings.Join(sheets, ",") != strings.Join(expected, ",") {
		t.Fatalf("Expected sheets %v, got %v", expected, sheets)
	}

	tests := []struct {
		sheet string
		cell  string
		want  string
	}{
		{"b737-1.ft", "A1", "Name"},
		{"b737-1.ft", "A2", "CDtot"},
		{"b737-1.ft", "B2", ""},
		{"b737-1.ft", "A3", "CLtot"},
		{"b737-1.ft", "B3", "1.5"},
		{"b737-1.fs", "A1", "Wing"},
		{"b737-1.fs", "A2", "Chord"},
		{"b737-1.fs", "B2", "Yle"},
		{"b737-1.fs", "A4", "5"},
		{"b737-1.fs", "B4", "4"},
		{"b737.eig", "A2", "1"},
		{"b737.eig", "B2", "-0.25"},
		{"b737.eig", "C2", "3"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s!%s) failed: %v", tt.sheet, tt.cell, err)
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, expected %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{"sheet1": true}
	long := strings.Repeat("x", 40) + ".fs"

	tests := []struct {
		name     string
		expected string
	}{
		{"b737-1.ft", "b737-1.ft"},
		{"B737-1.FT", "B737-1.FT~2"},
		{"run[1]:a.fs", "run_1__a.fs"},
		{"Sheet1", "Sheet1~2"},
		{long, strings.Repeat("x", 31)},
		{long, strings.Repeat("x", 29) + "~2"},
		{"", "result"},
		{strings.Repeat("é", 20) + "-1.ft", strings.Repeat("é", 20) + "-1.ft"},
		{strings.Repeat("é", 40), strings.Repeat("é", 31)},
		{strings.Repeat("é", 40) + "x", strings.Repeat("é", 29) + "~2"},
	}

	for _, tt := range tests {
		result := sheetName(tt.name, used)
		if result != tt.expected {
			t.Errorf("sheetName(%q) = %q, expected %q", tt.name, result, tt.expected)
		}
		if !utf8.ValidString(result) {
			t.Errorf("sheetName(%q) = %q is not valid UTF-8", tt.name, result)
		}
	}
}

func TestToXLSXMultiByteSheetName(t *testing.T) {
	name := strings.Repeat("é", 40) + ".ft"
	results := map[string]*models.Result{
		name: {File: name, Format: "ft", Scalars: models.Scalars{"Alpha": 2}},
	}

	tmpFile := filepath.Join(t.TempDir(), "results.xlsx")
	if err := ToXLSX(results, tmpFile); err != nil {
		t.Fatalf("ToXLSX failed: %v", err)
	}

	f, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != strings.Repeat("é", 31) {
		t.Fatalf("Expected one sheet of 31 characters, got %q", sheets)
	}
	got, err := f.GetCellValue(sheets[0], "B2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if got != "2" {
		t.Errorf("Expected 2, got %q", got)
	}
}

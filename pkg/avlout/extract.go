package avlout

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aerotools/avlout/pkg/avlout/models"
	"github.com/aerotools/avlout/pkg/avlout/parser"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Parse reads a completed AVL output file. The extractor is selected by the file extension;
// files with an unknown extension are returned as raw text with a warning.
func Parse(path string, opts Options) (*models.Result, error) {
	content, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	format, _ := FormatOf(path)
	return ParseContent(filepath.Base(path), format, content, opts)
}

// ParseContent parses the content of an output file as format.
// name is only used in results, warnings and errors.
func ParseContent(name string, format Format, content string, opts Options) (*models.Result, error) {
	d := parser.NewDoc(name, string(format), content, opts.StrictnessFor(format), opts.logger())
	result := &models.Result{
		File:   name,
		Format: string(format),
	}

	spec, ok := formatTable[format]
	if !ok {
		d.Warn(models.WarningUnknownFormat, parser.Line{}, fmt.Sprintf("unknown output file: %s", name))
		result.Raw = content
		result.Warnings = d.Warnings
		return result, nil
	}

	result.Output = spec.output
	if err := spec.parse(d, result); err != nil {
		return nil, err
	}
	result.Warnings = d.Warnings
	return result, nil
}

// readFile reads a whole file, honouring a UTF-8 or UTF-16 byte order mark.
func readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	r := transform.NewReader(f, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

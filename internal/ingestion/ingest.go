// Package ingestion turns PDF, DOCX, plain text and HTML resumes into parsed documents.
package ingestion

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lachho/resume/internal/types"
)

// IngestFile reads the document at path and extracts its text and structure
func IngestFile(ctx context.Context, path string) (*types.ParsedDocument, *Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, &FileReadError{Path: path, Message: "file not found", Cause: err}
		}
		return nil, nil, &FileReadError{Path: path, Message: "failed to read file", Cause: err}
	}
	return Ingest(ctx, path, data)
}

// Ingest extracts an in-memory document. name is used for format detection and reporting.
func Ingest(ctx context.Context, name string, data []byte) (*types.ParsedDocument, *Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	format, mimeType, err := DetectFormat(name, data)
	if err != nil {
		return nil, nil, err
	}

	var doc *types.ParsedDocument
	switch format {
	case FormatPDF:
		doc, err = extractPDF(data)
	case FormatDOCX:
		doc, err = extractDOCX(data)
	case FormatHTML:
		doc, err = extractHTML(data)
	default:
		doc, err = extractText(data)
	}
	if err != nil {
		return nil, nil, err
	}

	return doc, NewMetadata(name, mimeType, format, data), nil
}

// WriteOutput writes the extracted text and metadata next to each other in outDir,
// as <base>.extracted.txt and <base>.meta.json.
func WriteOutput(outDir string, doc *types.ParsedDocument, metadata *Metadata) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(metadata.Source), filepath.Ext(metadata.Source))
	if base == "" || base == "." {
		base = "document"
	}

	textPath := filepath.Join(outDir, base+".extracted.txt")
	if err := os.WriteFile(textPath, []byte(doc.Text), 0644); err != nil {
		return "", fmt.Errorf("failed to write extracted text file: %w", err)
	}

	metaJSON, err := metadata.ToJSON()
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata: %w", err)
	}
	metaPath := filepath.Join(outDir, base+".meta.json")
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return "", fmt.Errorf("failed to write metadata file: %w", err)
	}

	return base, nil
}

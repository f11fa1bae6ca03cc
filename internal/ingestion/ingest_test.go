package ingestion

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDocumentXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
<w:p><w:r><w:t xml:space="preserve">Civil   </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
<w:p></w:p>
<w:p></w:p>
<w:p><w:r><w:t>Skills</w:t><w:tab/><w:t>AutoCAD</w:t><w:br/><w:t>Civil 3D</w:t></w:r></w:p>
</w:body>
</w:document>`

// buildDOCX assembles a minimal word processing package
func buildDOCX(t *testing.T, withMedia bool) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := [][2]string{
		{"[Content_Types].xml", `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"/>`},
		{"word/document.xml", testDocumentXML},
	}
	if withMedia {
		files = append(files, [2]string{"word/media/image1.png", "\x89PNG\r\n\x1a\n"})
	}

	for _, f := range files {
		w, err := zw.Create(f[0])
		require.NoError(t, err)
		_, err = w.Write([]byte(f[1]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestIngest_PlainText(t *testing.T) {
	data := []byte("Jane Doe\r\nCivil Engineer\r\n")

	doc, meta, err := Ingest(context.Background(), "resume.txt", data)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nCivil Engineer\n", doc.Text)
	assert.False(t, doc.HasImages)
	assert.Nil(t, doc.PageCount)
	assert.Equal(t, FormatText, meta.Format)
	assert.Equal(t, "resume.txt", meta.Source)
	assert.Equal(t, len(data), meta.SizeBytes)
}

func TestIngest_DOCX(t *testing.T) {
	tests := []struct {
		name       string
		withMedia  bool
		wantImages bool
	}{
		{name: "text only", withMedia: false, wantImages: false},
		{name: "embedded image", withMedia: true, wantImages: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, meta, err := Ingest(context.Background(), "resume.docx", buildDOCX(t, tt.withMedia))
			require.NoError(t, err)

			assert.Equal(t, "Jane Doe\nCivil Engineer\n\nSkills AutoCAD\nCivil 3D", doc.Text)
			assert.Equal(t, tt.wantImages, doc.HasImages)
			assert.Nil(t, doc.PageCount)
			assert.Equal(t, FormatDOCX, meta.Format)
		})
	}
}

func TestIngest_DOCXWithoutBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, _, err = Ingest(context.Background(), "resume.docx", buf.Bytes())

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, FormatDOCX, extractionErr.Format)
	assert.Equal(t, docxFailure, extractionErr.Message)
}

func TestIngest_HTML(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "resume.html"))
	require.NoError(t, err)

	doc, meta, err := Ingest(context.Background(), "resume.html", data)
	require.NoError(t, err)

	assert.Equal(t, FormatHTML, meta.Format)
	assert.False(t, doc.HasImages)
	assert.Nil(t, doc.PageCount)
	assert.Contains(t, doc.Text, "Jane Doe\njane.doe@example.com | 0412 345 678\nWork Experience")
	assert.Contains(t, doc.Text, "Designed drainage upgrades\nfor three councils")
	assert.Contains(t, doc.Text, "AutoCAD Civil 3D")
	assert.NotContains(t, doc.Text, "console.log")
	assert.NotContains(t, doc.Text, "font-family")
}

func TestIngest_HTMLWithImage(t *testing.T) {
	data := []byte(`<html><body><p>Jane Doe</p><img src="photo.png" alt="me"></body></html>`)

	doc, _, err := Ingest(context.Background(), "resume.htm", data)
	require.NoError(t, err)

	assert.True(t, doc.HasImages)
	assert.Equal(t, "Jane Doe", doc.Text)
}

func TestIngest_CorruptedPDF(t *testing.T) {
	_, _, err := Ingest(context.Background(), "resume.pdf", []byte("%PDF-1.4\nthis is not really a pdf"))

	var extractionErr *ExtractionError
	require.ErrorAs(t, err, &extractionErr)
	assert.Equal(t, FormatPDF, extractionErr.Format)
	assert.Equal(t, pdfFailure, extractionErr.Message)
}

func TestIngest_UnsupportedType(t *testing.T) {
	pngHeader := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	_, _, err := Ingest(context.Background(), "photo.png", pngHeader)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "image/png", unsupported.MimeType)
	assert.Equal(t, unsupportedTypeMessage, err.Error())
}

func TestIngest_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Ingest(ctx, "resume.txt", []byte("Jane Doe"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIngestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Jane Doe\nEngineer"), 0644))

	doc, meta, err := IngestFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe\nEngineer", doc.Text)
	assert.Equal(t, path, meta.Source)
}

func TestIngestFile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, _, err := IngestFile(context.Background(), path)

	var readErr *FileReadError
	require.ErrorAs(t, err, &readErr)
	assert.Equal(t, path, readErr.Path)
	assert.Equal(t, "file not found", readErr.Message)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name     string
		fileName string
		data     []byte
		want     Format
	}{
		{name: "pdf extension", fileName: "a.PDF", data: []byte("anything"), want: FormatPDF},
		{name: "docx extension", fileName: "a.docx", data: []byte("anything"), want: FormatDOCX},
		{name: "markdown as text", fileName: "a.md", data: []byte("# Jane"), want: FormatText},
		{name: "htm extension", fileName: "a.htm", data: []byte("<p>x</p>"), want: FormatHTML},
		{name: "sniffed pdf", fileName: "upload", data: []byte("%PDF-1.7\n"), want: FormatPDF},
		{name: "sniffed html", fileName: "upload", data: []byte("<!DOCTYPE html><html><body>x</body></html>"), want: FormatHTML},
		{name: "sniffed text", fileName: "upload", data: []byte("Jane Doe\nCivil Engineer\n"), want: FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := DetectFormat(tt.fileName, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_SniffedDOCX(t *testing.T) {
	got, mimeType, err := DetectFormat("upload", buildDOCX(t, false))
	require.NoError(t, err)

	assert.Equal(t, FormatDOCX, got)
	assert.Equal(t, mimeDOCX, mimeType)
}

func TestWriteOutput(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	doc, meta, err := Ingest(context.Background(), "/tmp/jane-resume.txt", []byte("Jane Doe"))
	require.NoError(t, err)

	base, err := WriteOutput(outDir, doc, meta)
	require.NoError(t, err)
	assert.Equal(t, "jane-resume", base)

	text, err := os.ReadFile(filepath.Join(outDir, "jane-resume.extracted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", string(text))

	metaJSON, err := os.ReadFile(filepath.Join(outDir, "jane-resume.meta.json"))
	require.NoError(t, err)
	var decoded Metadata
	require.NoError(t, json.Unmarshal(metaJSON, &decoded))
	assert.Equal(t, meta.Hash, decoded.Hash)
	assert.Equal(t, FormatText, decoded.Format)
}

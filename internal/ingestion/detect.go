package ingestion

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is a supported document format
type Format string

// Supported formats
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatText Format = "txt"
	FormatHTML Format = "html"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeHTML = "text/html"
	mimeText = "text/plain"
)

// DetectFormat decides how to decode data. The file extension wins; content sniffing is the fallback.
// It also returns the sniffed MIME type.
func DetectFormat(name string, data []byte) (Format, string, error) {
	detected := mimetype.Detect(data)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, detected.String(), nil
	case ".docx":
		return FormatDOCX, detected.String(), nil
	case ".txt", ".text", ".md":
		return FormatText, detected.String(), nil
	case ".html", ".htm":
		return FormatHTML, detected.String(), nil
	}

	for m := detected; m != nil; m = m.Parent() {
		switch {
		case m.Is(mimePDF):
			return FormatPDF, detected.String(), nil
		case m.Is(mimeDOCX):
			return FormatDOCX, detected.String(), nil
		case m.Is(mimeHTML):
			return FormatHTML, detected.String(), nil
		case m.Is(mimeText):
			return FormatText, detected.String(), nil
		}
	}

	return "", detected.String(), &UnsupportedTypeError{Name: name, MimeType: detected.String()}
}

package ingestion

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/lachho/resume/internal/types"
)

const (
	docxFailure      = "Error parsing DOCX file. The document may be corrupted."
	docxBody         = "word/document.xml"
	docxMediaPrefix  = "word/media/"
	wordprocessingML = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// extractDOCX reads the paragraphs of the main document part, one line per paragraph.
// A document with anything under word/media/ has images. DOCX has no fixed page count.
func extractDOCX(data []byte) (*types.ParsedDocument, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Format: FormatDOCX, Message: docxFailure, Cause: err}
	}

	var body *zip.File
	hasImages := false
	for _, f := range zr.File {
		name := strings.ReplaceAll(f.Name, "\\", "/")
		switch {
		case name == docxBody:
			body = f
		case strings.HasPrefix(name, docxMediaPrefix) && !f.FileInfo().IsDir():
			hasImages = true
		}
	}
	if body == nil {
		return nil, &ExtractionError{Format: FormatDOCX, Message: docxFailure, Cause: errors.New("document.xml not found")}
	}

	rc, err := body.Open()
	if err != nil {
		return nil, &ExtractionError{Format: FormatDOCX, Message: docxFailure, Cause: err}
	}
	defer func() { _ = rc.Close() }()

	text, err := paragraphText(rc)
	if err != nil {
		return nil, &ExtractionError{Format: FormatDOCX, Message: docxFailure, Cause: err}
	}

	return &types.ParsedDocument{
		Text:      CleanText(text),
		HasImages: hasImages,
	}, nil
}

// paragraphText collects the text runs of a WordprocessingML body
func paragraphText(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)
	var buf strings.Builder
	inText := false

	for {
		tok, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordprocessingML {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				buf.WriteByte('\t')
			case "br", "cr":
				buf.WriteByte('\n')
			}
		case xml.EndElement:
			if t.Name.Space != wordprocessingML {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				buf.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				buf.Write(t)
			}
		}
	}

	return buf.String(), nil
}

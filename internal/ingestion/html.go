package ingestion

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"

	"github.com/lachho/resume/internal/types"
)

// block elements end a line of extracted text
const blockSelector = "p, div, li, h1, h2, h3, h4, h5, h6, tr, dt, dd, section, article, header, footer, blockquote, pre"

// extractHTML returns the visible text of an HTML resume
func extractHTML(data []byte) (*types.ParsedDocument, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, &ExtractionError{Format: FormatHTML, Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("head, script, style, noscript, template").Remove()
	hasImages := doc.Find("img, svg, picture, canvas").Length() > 0

	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find(blockSelector).AppendHtml("\n")
	doc.Find("td, th").AppendHtml(" ")

	return &types.ParsedDocument{
		Text:      cleanWhitespace(doc.Text()),
		HasImages: hasImages,
	}, nil
}

package ingestion

import (
	"bytes"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/lachho/resume/internal/types"
)

const pdfFailure = "Error parsing PDF file. The PDF may be corrupted or password-protected."

// extractPDF reads the text of every page, one line per baseline from top to bottom.
// Pages whose text cannot be read are skipped.
func extractPDF(data []byte) (doc *types.ParsedDocument, err error) {
	// the pdf reader panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			doc, err = nil, &ExtractionError{Format: FormatPDF, Message: pdfFailure}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, &ExtractionError{Format: FormatPDF, Message: pdfFailure, Cause: err}
	}

	var text strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		lines, ok := pageLines(page)
		if !ok {
			continue
		}
		for _, line := range lines {
			text.WriteString(line)
			text.WriteByte('\n')
		}
	}

	pageCount := reader.NumPage()
	if n, err := api.PageCount(bytes.NewReader(data), pdfConfig()); err == nil {
		pageCount = n
	}

	return &types.ParsedDocument{
		Text:      text.String(),
		HasImages: pdfHasImages(data),
		PageCount: types.IntPtr(pageCount),
	}, nil
}

// pageLines groups the glyphs of a page by rounded baseline, top row first, each row left to right.
// Blank rows are dropped. ok is false when the page content cannot be interpreted.
func pageLines(page pdf.Page) (lines []string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			lines, ok = nil, false
		}
	}()

	rows := map[float64][]pdf.Text{}
	for _, t := range page.Content().Text {
		y := math.Round(t.Y)
		rows[y] = append(rows[y], t)
	}

	ys := make([]float64, 0, len(rows))
	for y := range rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ys)))

	for _, y := range ys {
		row := rows[y]
		// glyphs sharing an x keep content stream order
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })

		var line strings.Builder
		for _, t := range row {
			line.WriteString(t.S)
		}
		if strings.TrimSpace(line.String()) != "" {
			lines = append(lines, line.String())
		}
	}
	return lines, true
}

// pdfHasImages reports whether any page embeds an image. Files pdfcpu cannot read count as image free.
func pdfHasImages(data []byte) bool {
	pages, err := api.Images(bytes.NewReader(data), nil, pdfConfig())
	if err != nil {
		return false
	}
	for _, images := range pages {
		if len(images) > 0 {
			return true
		}
	}
	return false
}

func pdfConfig() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

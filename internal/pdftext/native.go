package pdftext

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// nativeSource reads page text with the pure-Go PDF reader.
type nativeSource struct{}

func (nativeSource) Name() string { return "native" }

// FirstPage returns page 1 text. Tight joins text runs row by row; loose asks the
// reader for its plain-text rendering.
func (nativeSource) FirstPage(_ context.Context, path string, loose bool) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	if r.NumPage() < 1 {
		return "", nil
	}
	page := r.Page(1)
	if page.V.IsNull() {
		return "", nil
	}
	if loose {
		return page.GetPlainText(nil)
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, row := range rows {
		for i, word := range row.Content {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(word.S)
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}

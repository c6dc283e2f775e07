// Package pdftext extracts plain text from PDF byte streams.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// PageCount validates the byte stream as a PDF and returns its page count.
func PageCount(data []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return 0, fmt.Errorf("not a well-formed PDF: %w", err)
	}
	return count, nil
}

// Extract returns the concatenation of every page's plain text, in page order.
// Pages with no extractable text contribute an empty string; an all-empty
// result is valid (e.g. an image-only scan) and is not an error here.
func Extract(data []byte) (text string, err error) {
	// ledongthuc/pdf panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to extract text: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// No extractable text layer on this page.
			continue
		}
		sb.WriteString(content)
	}

	return sb.String(), nil
}

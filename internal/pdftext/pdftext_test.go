package pdftext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// makePDF builds an in-memory PDF with one page per text entry.
// An empty entry produces a page with no text layer.
func makePDF(t *testing.T, pages ...string) []byte {
	t.Helper()

	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, text := range pages {
		doc.AddPage()
		if text != "" {
			doc.Cell(40, 10, text)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("failed to build fixture PDF: %v", err)
	}
	return buf.Bytes()
}

func TestExtract(t *testing.T) {
	t.Run("concatenates pages in order", func(t *testing.T) {
		data := makePDF(t, "alpha page", "beta page")

		text, err := Extract(data)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		first := strings.Index(text, "alpha")
		second := strings.Index(text, "beta")
		if first == -1 || second == -1 {
			t.Fatalf("missing page text in %q", text)
		}
		if first > second {
			t.Errorf("page order not preserved: %q", text)
		}
	})

	t.Run("pages without text contribute nothing", func(t *testing.T) {
		data := makePDF(t, "", "only page with text", "")

		text, err := Extract(data)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if !strings.Contains(text, "only page with text") {
			t.Errorf("expected text from middle page, got %q", text)
		}
	})

	t.Run("image-only document yields empty text without error", func(t *testing.T) {
		data := makePDF(t, "", "")

		text, err := Extract(data)
		if err != nil {
			t.Fatalf("Extract() error = %v", err)
		}
		if strings.TrimSpace(text) != "" {
			t.Errorf("expected empty text, got %q", text)
		}
	})

	t.Run("malformed input is an error", func(t *testing.T) {
		if _, err := Extract([]byte("this is not a pdf")); err == nil {
			t.Error("expected error for non-PDF bytes")
		}
	})
}

func TestPageCount(t *testing.T) {
	t.Run("counts pages", func(t *testing.T) {
		data := makePDF(t, "one", "two", "three")

		count, err := PageCount(data)
		if err != nil {
			t.Fatalf("PageCount() error = %v", err)
		}
		if count != 3 {
			t.Errorf("PageCount() = %d, want 3", count)
		}
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		if _, err := PageCount([]byte("nope")); err == nil {
			t.Error("expected error for non-PDF bytes")
		}
	})
}

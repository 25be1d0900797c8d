// Package extract turns stored document formats into plain text for chunking.
package extract

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/sevigo/highlighter/schema"
)

var (
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
	blankLineRe  = regexp.MustCompile(`\n[ \t]*\n`)
	newlineRunRe = regexp.MustCompile(`\n{3,}`)
)

// PDF extracts text from PDF documents.
type PDF struct {
	logger *slog.Logger
}

// NewPDF creates a PDF extractor.
func NewPDF(logger *slog.Logger) *PDF {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDF{logger: logger}
}

// File extracts the text of the PDF at path, pages joined by blank lines.
func (p *PDF) File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF file %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to get file info for %s: %w", path, err)
	}

	reader, err := pdf.NewReader(f, info.Size())
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader for %s: %w", path, err)
	}
	return p.readPages(reader)
}

// Bytes extracts the text of a PDF held in memory.
func (p *PDF) Bytes(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to create PDF reader: %w", err)
	}
	return p.readPages(reader)
}

func (p *PDF) readPages(reader *pdf.Reader) (string, error) {
	numPages := reader.NumPage()
	if numPages == 0 {
		p.logger.Warn("PDF has no pages")
		return "", schema.ErrNoText
	}

	p.logger.Debug("PDF text extraction starting", "pages", numPages)

	var pages []string
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			p.logger.Warn("skipping null page", "page", i)
			continue
		}
		if text := p.pageText(page, i); text != "" {
			pages = append(pages, text)
		}
	}

	if len(pages) == 0 {
		return "", schema.ErrNoText
	}

	p.logger.Debug("PDF text extraction finished", "pages_with_text", len(pages))
	return strings.Join(pages, "\n\n"), nil
}

// pageText extracts text from a single page, falling back to raw content
// tokens when plain-text extraction yields nothing.
func (p *PDF) pageText(page pdf.Page, pageNum int) string {
	if content, err := page.GetPlainText(nil); err == nil && strings.TrimSpace(content) != "" {
		return cleanPDFText(content)
	}

	var builder bytes.Buffer
	content := page.Content()
	for i, token := range content.Text {
		builder.WriteString(token.S)
		if i < len(content.Text)-1 && !strings.HasSuffix(token.S, " ") && !strings.HasSuffix(token.S, "\n") {
			builder.WriteString(" ")
		}
	}

	if text := builder.String(); strings.TrimSpace(text) != "" {
		return cleanPDFText(text)
	}

	p.logger.Debug("no text extracted from page", "page", pageNum)
	return ""
}

// cleanPDFText normalizes extracted page text: collapses space runs, squeezes
// blank-line runs down to one, and repairs a common ligature artifact.
func cleanPDFText(text string) string {
	text = spaceRunRe.ReplaceAllString(text, " ")
	text = blankLineRe.ReplaceAllString(text, "\n\n")
	text = newlineRunRe.ReplaceAllString(text, "\n\n")
	text = strings.ReplaceAll(text, "ﬂ", "fl")
	text = strings.ReplaceAll(text, "ﬁ", "fi")
	return strings.TrimSpace(text)
}

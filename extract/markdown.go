package extract

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Markdown extracts plain text from markdown documents via the goldmark AST,
// so markup syntax never leaks into the chunked output.
type Markdown struct {
	md     goldmark.Markdown
	logger *slog.Logger
}

// NewMarkdown creates a markdown extractor.
func NewMarkdown(logger *slog.Logger) *Markdown {
	if logger == nil {
		logger = slog.Default()
	}
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Strikethrough,
			),
		),
		logger: logger,
	}
}

// Text returns the document's block contents joined by blank lines.
func (m *Markdown) Text(content string) string {
	source := []byte(content)
	doc := m.md.Parser().Parse(text.NewReader(source))

	var blocks []string
	appendBlock := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			blocks = append(blocks, s)
		}
	}

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.Heading, *ast.Paragraph, *ast.TextBlock:
			appendBlock(nodeText(n, source))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			appendBlock(blockLines(n, source))
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	if len(blocks) == 0 {
		m.logger.Debug("markdown document produced no text blocks")
		return ""
	}
	return strings.Join(blocks, "\n\n")
}

// Title returns the first level-1 heading, falling back to a title-cased
// filename stem.
func (m *Markdown) Title(content, path string) string {
	source := []byte(content)
	doc := m.md.Parser().Parse(text.NewReader(source))

	title := ""
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || title != "" {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			title = nodeText(heading, source)
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	if title != "" {
		return title
	}
	return TitleFromFilename(path)
}

// TitleFromFilename derives a display title from a file name.
func TitleFromFilename(path string) string {
	name := filepath.Base(path)
	title := strings.TrimSuffix(name, filepath.Ext(name))
	if title == "" {
		return "Document"
	}

	title = strings.ReplaceAll(title, "_", " ")
	title = strings.ReplaceAll(title, "-", " ")
	return cases.Title(language.English).String(title)
}

// nodeText collects the plain text segments beneath an AST node.
func nodeText(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == ast.KindText {
			segment := n.(*ast.Text).Segment
			buf.Write(segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

// blockLines returns the raw source lines of a block node.
func blockLines(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(source))
	}
	return strings.TrimRight(buf.String(), "\n")
}

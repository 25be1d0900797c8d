package chunking

import (
	"regexp"
	"strings"

	"github.com/sevigo/highlighter/schema"
)

var (
	// sentenceEndRe matches a sentence-ending punctuation mark followed by
	// exactly one whitespace character.
	sentenceEndRe = regexp.MustCompile(`[.!?]\s`)

	// clauseRe matches a clause separator together with its trailing whitespace.
	clauseRe = regexp.MustCompile(`[,:;]\s+`)
)

// TieredChunker splits text into chunks of at most a configured size using
// six ordered tiers: paragraphs, lines, sentences, clauses, words, and fixed
// character windows. Each tier only touches fragments that still exceed the
// bound, and every tier is followed by a greedy recombination pass so that
// small fragments from earlier tiers merge back together.
//
// The chunker holds no mutable state and is safe for concurrent use.
type TieredChunker struct {
	opts options
}

var _ schema.Chunker = (*TieredChunker)(nil)

// NewTiered creates a TieredChunker.
func NewTiered(opts ...Option) *TieredChunker {
	o := options{
		maxChunkSize: DefaultMaxChunkSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &TieredChunker{opts: o}
}

// MaxChunkSize reports the configured size bound.
func (c *TieredChunker) MaxChunkSize() int {
	return c.opts.maxChunkSize
}

// Chunk splits text into ordered string chunks. Every chunk, including its
// trailing separator, is at most MaxChunkSize long. Concatenating the chunks
// in order reproduces the input, except across clause-split boundaries where
// surrounding whitespace is trimmed. Empty input yields no chunks.
func (c *TieredChunker) Chunk(text string) []string {
	if text == "" {
		return nil
	}

	chunks := []Chunk{{Text: text}}
	chunks = c.byParagraphs(chunks)
	chunks = c.byLines(chunks)
	chunks = c.bySentences(chunks)
	chunks = c.byClauses(chunks)
	chunks = c.byWords(chunks)
	chunks = c.byCharacters(chunks)

	out := make([]string, 0, len(chunks))
	for _, ch := range chunks {
		out = append(out, ch.Join())
	}
	return out
}

// bySeparator splits oversized fragments on a literal separator. All but the
// last sub-fragment carry the separator as their delimiter; the last inherits
// the parent's delimiter so reconstruction stays exact across tiers.
func (c *TieredChunker) bySeparator(chunks []Chunk, sep string) []Chunk {
	var refined []Chunk
	for _, ch := range chunks {
		if ch.Len() <= c.opts.maxChunkSize {
			refined = append(refined, ch)
			continue
		}

		parts := strings.Split(ch.Text, sep)
		for _, p := range parts[:len(parts)-1] {
			refined = append(refined, Chunk{Text: p, Delimiter: delim(sep)})
		}
		refined = append(refined, Chunk{Text: parts[len(parts)-1], Delimiter: ch.Delimiter})
	}
	return c.recombine(refined)
}

func (c *TieredChunker) byParagraphs(chunks []Chunk) []Chunk {
	return c.bySeparator(chunks, "\n\n")
}

func (c *TieredChunker) byLines(chunks []Chunk) []Chunk {
	return c.bySeparator(chunks, "\n")
}

func (c *TieredChunker) byWords(chunks []Chunk) []Chunk {
	return c.bySeparator(chunks, " ")
}

// bySentences splits oversized fragments after sentence-ending punctuation
// followed by a single whitespace character. The consumed whitespace is
// recorded as a single space.
func (c *TieredChunker) bySentences(chunks []Chunk) []Chunk {
	var refined []Chunk
	for _, ch := range chunks {
		if ch.Len() <= c.opts.maxChunkSize {
			refined = append(refined, ch)
			continue
		}

		last := 0
		for _, loc := range sentenceEndRe.FindAllStringIndex(ch.Text, -1) {
			// keep the punctuation, drop the whitespace character
			refined = append(refined, Chunk{Text: ch.Text[last : loc[1]-1], Delimiter: delim(" ")})
			last = loc[1]
		}
		refined = append(refined, Chunk{Text: ch.Text[last:], Delimiter: ch.Delimiter})
	}
	return c.recombine(refined)
}

// byClauses splits oversized fragments on commas, colons, and semicolons. The
// delimiter is the exact matched separator including its trailing whitespace,
// and the fragment text is trimmed of surrounding whitespace. The trim is
// intentional and is the one place reconstruction may differ from the input.
func (c *TieredChunker) byClauses(chunks []Chunk) []Chunk {
	var refined []Chunk
	for _, ch := range chunks {
		if ch.Len() <= c.opts.maxChunkSize {
			refined = append(refined, ch)
			continue
		}

		var parts []Chunk
		last := 0
		for _, loc := range clauseRe.FindAllStringIndex(ch.Text, -1) {
			if text := ch.Text[last:loc[0]]; text != "" {
				parts = append(parts, Chunk{
					Text:      strings.TrimSpace(text),
					Delimiter: delim(ch.Text[loc[0]:loc[1]]),
				})
			}
			last = loc[1]
		}

		if rest := ch.Text[last:]; rest != "" {
			parts = append(parts, Chunk{Text: strings.TrimSpace(rest), Delimiter: ch.Delimiter})
		} else if len(parts) > 0 {
			parts[len(parts)-1].Delimiter = ch.Delimiter
		}

		refined = append(refined, parts...)
	}
	return c.recombine(refined)
}

// byCharacters slices oversized fragments into fixed windows of maxChunkSize.
// Internal windows carry an empty delimiter. If the last window plus the
// inherited delimiter would still exceed the bound, it is bisected near its
// midpoint, biased so the second half fully absorbs the delimiter length.
func (c *TieredChunker) byCharacters(chunks []Chunk) []Chunk {
	maxSize := c.opts.maxChunkSize

	var refined []Chunk
	for _, ch := range chunks {
		if ch.Len() <= maxSize {
			refined = append(refined, ch)
			continue
		}

		// A fragment can exceed the bound on its delimiter alone when the
		// clause tier trims whitespace-only text to nothing. There is no
		// text left to slice, so the delimiter passes through whole.
		if ch.Text == "" {
			refined = append(refined, ch)
			continue
		}

		var windows []string
		for i := 0; i < len(ch.Text); i += maxSize {
			windows = append(windows, ch.Text[i:min(i+maxSize, len(ch.Text))])
		}
		for _, w := range windows[:len(windows)-1] {
			refined = append(refined, Chunk{Text: w, Delimiter: delim("")})
		}

		last := windows[len(windows)-1]
		delimLen := 0
		if ch.Delimiter != nil {
			delimLen = len(*ch.Delimiter)
		}
		if len(last)+delimLen > maxSize {
			split := min(len(last)/2+delimLen, len(last))
			refined = append(refined, Chunk{Text: last[:split], Delimiter: delim("")})
			refined = append(refined, Chunk{Text: last[split:], Delimiter: ch.Delimiter})
		} else {
			refined = append(refined, Chunk{Text: last, Delimiter: ch.Delimiter})
		}
	}
	return c.recombine(refined)
}

// recombine greedily merges adjacent fragments left to right, joining via the
// accumulated fragment's own delimiter, as long as the result stays within
// the size bound.
func (c *TieredChunker) recombine(chunks []Chunk) []Chunk {
	if len(chunks) == 0 {
		return nil
	}

	recombined := make([]Chunk, 0, len(chunks))
	current := chunks[0]

	for _, next := range chunks[1:] {
		joiner := ""
		if current.Delimiter != nil {
			joiner = *current.Delimiter
		}
		merged := Chunk{Text: current.Text + joiner + next.Text, Delimiter: next.Delimiter}

		if merged.Len() > c.opts.maxChunkSize {
			recombined = append(recombined, current)
			current = next
		} else {
			current = merged
		}
	}

	return append(recombined, current)
}

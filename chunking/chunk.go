// Package chunking splits document text into length-bounded fragments using
// a tiered strategy that prefers natural boundaries (paragraphs, sentences)
// and only falls back to word or character splits for oversized fragments.
package chunking

// Chunk is a text fragment paired with the exact separator that followed it
// in the source. A nil Delimiter marks the final fragment of its parent.
// Chunks are never mutated; refinement always produces new values.
type Chunk struct {
	Text      string
	Delimiter *string
}

// Len returns the length of the fragment including its delimiter.
func (c Chunk) Len() int {
	if c.Delimiter == nil {
		return len(c.Text)
	}
	return len(c.Text) + len(*c.Delimiter)
}

// TextLen returns the length of the fragment text only.
func (c Chunk) TextLen() int {
	return len(c.Text)
}

// Join returns the fragment text with its delimiter appended.
func (c Chunk) Join() string {
	if c.Delimiter == nil {
		return c.Text
	}
	return c.Text + *c.Delimiter
}

func delim(s string) *string {
	return &s
}

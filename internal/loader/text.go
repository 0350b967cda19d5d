package loader

import (
	"bytes"
	"context"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// TextParser handles plain text and Markdown
type TextParser struct{}

func (p *TextParser) Formats() []string { return []string{"txt", "md", "text"} }

func (p *TextParser) Parse(ctx context.Context, data []byte) (*Parsed, error) {
	data = bytes.ToValidUTF8(bytes.TrimPrefix(data, utf8BOM), []byte("\uFFFD"))
	return &Parsed{Text: string(data)}, nil
}

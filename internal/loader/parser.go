package loader

import (
	"context"
	"fmt"
	"sort"
)

// Parsed is the text a parser recovered from one document
type Parsed struct {
	Text  string
	Pages int // Zero when the format has no page model
}

// Parser extracts plain text from the raw bytes of one document format
type Parser interface {
	Parse(ctx context.Context, data []byte) (*Parsed, error)
	Formats() []string
}

// Registry maps format names (extensions without the dot) to parsers
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry registers the built-in text, PDF, DOCX and HTML parsers
func NewRegistry() *Registry {
	r := &Registry{parsers: make(map[string]Parser)}
	for _, p := range []Parser{&TextParser{}, &PDFParser{}, &DOCXParser{}, &HTMLParser{}} {
		r.Register(p)
	}
	return r
}

// Register adds p under every format it declares, replacing earlier entries
func (r *Registry) Register(p Parser) {
	for _, f := range p.Formats() {
		r.parsers[f] = p
	}
}

// Get returns the parser for a format
func (r *Registry) Get(format string) (Parser, error) {
	p, ok := r.parsers[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	return p, nil
}

// Formats lists registered formats in sorted order
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for f := range r.parsers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

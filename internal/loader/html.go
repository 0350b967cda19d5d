package loader

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// boilerplate is removed before text extraction
const boilerplate = "script, style, noscript, iframe, nav, header, footer, form, svg"

// HTMLParser extracts readable text from contract pages, one block element per line
type HTMLParser struct{}

func (p *HTMLParser) Formats() []string { return []string{"html", "htm"} }

func (p *HTMLParser) Parse(ctx context.Context, data []byte) (*Parsed, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse HTML: %w", err)
	}
	doc.Find(boilerplate).Remove()

	root := doc.Find("main, article").First()
	if root.Length() == 0 {
		root = doc.Find("body")
	}
	if root.Length() == 0 {
		root = doc.Selection
	}

	var buf strings.Builder
	for _, n := range root.Nodes {
		visibleText(n, &buf)
	}
	return &Parsed{Text: tidyLines(buf.String())}, nil
}

// visibleText writes text nodes, ending each block element with a blank line
func visibleText(n *html.Node, buf *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			buf.WriteString(text)
			buf.WriteString(" ")
		}
		return
	case html.ElementNode:
		if n.Data == "br" {
			buf.WriteString("\n")
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visibleText(c, buf)
	}

	if n.Type == html.ElementNode && isBlock(n.Data) {
		buf.WriteString("\n\n")
	}
}

func isBlock(tag string) bool {
	switch tag {
	case "p", "div", "li", "tr", "section", "article", "blockquote", "pre", "dt", "dd",
		"h1", "h2", "h3", "h4", "h5", "h6", "table", "ul", "ol", "main":
		return true
	}
	return false
}

// tidyLines trims each line and collapses runs of blank lines to one
func tidyLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := true
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		out = append(out, line)
		blank = false
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

package loader

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DOCXParser reads paragraphs and table rows from word/document.xml
type DOCXParser struct{}

// Formats includes doc so legacy names get a clear parse error instead of a format error
func (p *DOCXParser) Formats() []string { return []string{"docx", "doc"} }

func (p *DOCXParser) Parse(ctx context.Context, data []byte) (*Parsed, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open DOCX: %w", err)
	}

	var body []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}
		body, err = io.ReadAll(rc)
		_ = rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if body == nil {
		return nil, fmt.Errorf("word/document.xml not found in DOCX")
	}

	text, err := docxPlainText(body)
	if err != nil {
		return nil, fmt.Errorf("parse DOCX XML: %w", err)
	}
	return &Parsed{Text: text}, nil
}

type docxPara struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []docxText `xml:"t"`
}

type docxText struct {
	Content string `xml:",chardata"`
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paras []docxPara `xml:"p"`
}

// docxPlainText walks the body in document order. Paragraphs become one line each,
// table rows become one line with cells separated by " | ".
func docxPlainText(data []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var lines []string
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		switch se.Name.Local {
		case "p":
			var para docxPara
			if err := dec.DecodeElement(&para, &se); err != nil {
				return "", err
			}
			if text := strings.TrimSpace(paraText(para)); text != "" {
				lines = append(lines, text)
			}
		case "tbl":
			var tbl docxTable
			if err := dec.DecodeElement(&tbl, &se); err != nil {
				return "", err
			}
			lines = append(lines, tableLines(tbl)...)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func tableLines(tbl docxTable) []string {
	var lines []string
	for _, row := range tbl.Rows {
		cells := make([]string, 0, len(row.Cells))
		filled := false
		for _, cell := range row.Cells {
			parts := make([]string, 0, len(cell.Paras))
			for _, p := range cell.Paras {
				if t := strings.TrimSpace(paraText(p)); t != "" {
					parts = append(parts, t)
				}
			}
			filled = filled || len(parts) > 0
			cells = append(cells, strings.Join(parts, " "))
		}
		if filled {
			lines = append(lines, strings.Join(cells, " | "))
		}
	}
	return lines
}

func paraText(para docxPara) string {
	var b strings.Builder
	for _, run := range para.Runs {
		for _, t := range run.Text {
			b.WriteString(t.Content)
		}
	}
	return b.String()
}

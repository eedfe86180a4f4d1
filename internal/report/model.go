package report

import (
	"strings"

	"gemcast-api/internal/search"
)

type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading
)

// Run is a span of text with one weight.
type Run struct {
	Text string
	Bold bool
}

type Block struct {
	Kind BlockKind
	Runs []Run
}

// Plain joins the runs without markup.
func (b Block) Plain() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

type Document struct {
	Title   string
	Blocks  []Block
	Sources []search.Source
}

const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

type GenerateInput struct {
	Query  string `form:"query" json:"query"`
	Model  string `form:"model" json:"model"`
	Format string `form:"format" json:"format"`
}

type Report struct {
	URL    string `json:"report_url"`
	Format string `json:"report_format"`
	Path   string `json:"-"`
}

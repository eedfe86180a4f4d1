package report

import (
	"regexp"
	"strings"

	"gemcast-api/internal/util"
)

const maxTitleRunes = 80

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Title cleans a raw query for use as a document title.
func Title(query string) string {
	t := strings.Join(strings.Fields(query), " ")
	t = strings.TrimRight(t, "?？!. ")
	return util.ClampRunes(t, maxTitleRunes)
}

// Parse splits report text into blocks. Lines starting with "##" become
// headings, other non-blank lines paragraphs; **x** marks bold runs.
func Parse(query, text string) Document {
	doc := Document{Title: Title(query)}
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "##") {
			heading := strings.TrimSpace(strings.TrimLeft(line, "#"))
			if heading == "" {
				continue
			}
			doc.Blocks = append(doc.Blocks, Block{Kind: Heading, Runs: ParseRuns(heading)})
			continue
		}
		doc.Blocks = append(doc.Blocks, Block{Kind: Paragraph, Runs: ParseRuns(line)})
	}
	return doc
}

// ParseRuns splits a line on **bold** markers. Unpaired markers stay literal.
func ParseRuns(line string) []Run {
	var runs []Run
	last := 0
	for _, m := range boldPattern.FindAllStringSubmatchIndex(line, -1) {
		if m[0] > last {
			runs = append(runs, Run{Text: line[last:m[0]]})
		}
		runs = append(runs, Run{Text: line[m[2]:m[3]], Bold: true})
		last = m[1]
	}
	if last < len(line) {
		runs = append(runs, Run{Text: line[last:]})
	}
	return runs
}

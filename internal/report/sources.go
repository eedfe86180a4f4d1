package report

import (
	"gemcast-api/internal/search"

	"github.com/iancoleman/orderedmap"
)

// sourceColumns is the column order of the exported sources table.
var sourceColumns = []string{"no", "title", "url"}

// SourceRows turns sources into rows keyed by column name in sourceColumns
// order. Blank titles are filled with the url.
func SourceRows(sources []search.Source) []*orderedmap.OrderedMap {
	rows := make([]*orderedmap.OrderedMap, 0, len(sources))
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URL
		}
		row := orderedmap.New()
		row.Set("no", i+1)
		row.Set("title", title)
		row.Set("url", s.URL)
		rows = append(rows, row)
	}
	return rows
}

// rowValues returns the row's values in key order.
func rowValues(row *orderedmap.OrderedMap) []interface{} {
	keys := row.Keys()
	out := make([]interface{}, 0, len(keys))
	for _, k := range keys {
		v, _ := row.Get(k)
		out = append(out, v)
	}
	return out
}

package report

import (
	"os"

	"gemcast-api/internal/util"

	"github.com/xuri/excelize/v2"
)

const (
	reportSheet  = "Report"
	sourcesSheet = "Sources"
)

// XLSXRenderer writes the report as one block per row plus a sources sheet.
type XLSXRenderer struct{}

func (XLSXRenderer) Format() string { return FormatXLSX }

func (XLSXRenderer) Render(doc Document, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	headingStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 13},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#E2E8F0"}},
	})
	if err != nil {
		return err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return err
	}

	defaultSheet := f.GetSheetName(0)

	if _, err := f.NewSheet(reportSheet); err != nil {
		return err
	}
	sw, err := f.NewStreamWriter(reportSheet)
	if err != nil {
		return err
	}
	if err := sw.SetColWidth(1, 1, 100); err != nil {
		return err
	}
	if err := sw.SetRow("A1", []interface{}{excelize.Cell{Value: doc.Title, StyleID: titleStyle}}); err != nil {
		return err
	}

	rowNum := 2
	for _, b := range doc.Blocks {
		style := bodyStyle
		if b.Kind == Heading {
			style = headingStyle
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, []interface{}{excelize.Cell{Value: b.Plain(), StyleID: style}}); err != nil {
			return err
		}
		rowNum++
	}
	if err := sw.Flush(); err != nil {
		return err
	}

	if _, err := f.NewSheet(sourcesSheet); err != nil {
		return err
	}
	ssw, err := f.NewStreamWriter(sourcesSheet)
	if err != nil {
		return err
	}
	header := make([]interface{}, 0, len(sourceColumns))
	for _, col := range sourceColumns {
		header = append(header, excelize.Cell{Value: col, StyleID: headingStyle})
	}
	if err := ssw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range SourceRows(doc.Sources) {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := ssw.SetRow(cell, rowValues(row)); err != nil {
			return err
		}
	}
	if err := ssw.Flush(); err != nil {
		return err
	}

	if defaultSheet != "" && defaultSheet != reportSheet {
		if err := f.DeleteSheet(defaultSheet); err != nil {
			return err
		}
	}
	if idx, err := f.GetSheetIndex(reportSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}
	return util.WriteFile(path, func(out *os.File) error {
		_, err := buf.WriteTo(out)
		return err
	})
}

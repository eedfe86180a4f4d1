package report

import (
	"errors"
	"log"
	"os"

	"gemcast-api/internal/util"

	"github.com/go-pdf/fpdf"
)

const (
	fontFamily   = "NanumGothic"
	coreFamily   = "Helvetica"
	bodySize     = 11
	boldSize     = 12
	headingSize  = 16
	titleSize    = 20
	bodyLeading  = 6.0
	headingSpace = 10.0
)

// PDFRenderer lays a Document out on A4 pages. FontPath should point to a
// TTF covering Hangul; without it the core Helvetica font is used and
// characters outside cp1252 are lost.
type PDFRenderer struct {
	FontPath string
}

func (PDFRenderer) Format() string { return FormatPDF }

func (r PDFRenderer) Render(doc Document, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle(doc.Title, true)

	family := coreFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if r.FontPath != "" {
		if _, err := os.Stat(r.FontPath); err == nil {
			pdf.AddUTF8Font(fontFamily, "", r.FontPath)
			pdf.AddUTF8Font(fontFamily, "B", r.FontPath)
			family = fontFamily
			tr = func(s string) string { return s }
		} else {
			log.Printf("report: font %s unavailable, using %s: %v", r.FontPath, coreFamily, err)
		}
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", titleSize)
	pdf.MultiCell(0, 10, tr(doc.Title), "", "C", false)
	pdf.Ln(4)

	for _, b := range doc.Blocks {
		switch b.Kind {
		case Heading:
			pdf.Ln(2)
			pdf.SetFont(family, "B", headingSize)
			pdf.MultiCell(0, headingSpace, tr(b.Plain()), "", "C", false)
			pdf.Ln(2)
		default:
			for _, run := range b.Runs {
				if run.Bold {
					pdf.SetFont(family, "B", boldSize)
				} else {
					pdf.SetFont(family, "", bodySize)
				}
				pdf.Write(bodyLeading, tr(run.Text))
			}
			pdf.Ln(bodyLeading + 2)
		}
	}

	if len(doc.Sources) > 0 {
		pdf.Ln(4)
		pdf.SetFont(family, "B", headingSize)
		pdf.MultiCell(0, headingSpace, tr("출처"), "", "C", false)
		pdf.SetFont(family, "", 9)
		for _, s := range doc.Sources {
			pdf.Write(5, tr(s.Title+" "))
			pdf.WriteLinkString(5, s.URL, s.URL)
			pdf.Ln(5)
		}
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	if pdf.PageCount() == 0 {
		return errors.New("empty pdf")
	}
	return util.WriteFile(path, func(f *os.File) error {
		return pdf.Output(f)
	})
}

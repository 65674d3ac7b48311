package pdf_writer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"

	"img2pdf/contracts"
)

type ConvertResult = contracts.ConvertResult

// PDFWriter accumulates one page per image. Pages keep the order in which
// images were written.
type PDFWriter struct {
	pdf   *gofpdf.Fpdf
	pages []PageInfo
}

type PageInfo struct {
	ImageId string
	Width   float64
	Height  float64
}

func NewPDFWriter(title string) *PDFWriter {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "A4",
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("img2pdf", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	return &PDFWriter{pdf: pdf}
}

// WriteImage adds a page of the requested size and stretches the image over
// all of it, origin at the top-left corner.
func (pw *PDFWriter) WriteImage(image *ConvertResult) error {
	if image.PageWidth <= 0 || image.PageHeight <= 0 {
		return fmt.Errorf("invalid page size %.2fx%.2f for %s", image.PageWidth, image.PageHeight, image.ImageId)
	}

	opts := gofpdf.ImageOptions{
		ImageType: image.ImgFormat,
		ReadDpi:   false,
	}

	pw.pdf.AddPageFormat("P", gofpdf.SizeType{Wd: image.PageWidth, Ht: image.PageHeight})
	pw.pdf.RegisterImageOptionsReader(image.ImageId, opts, bytes.NewReader(image.ImgBuffer))
	pw.pdf.ImageOptions(image.ImageId, 0, 0, image.PageWidth, image.PageHeight, false, opts, 0, "")
	if pw.pdf.Err() {
		return fmt.Errorf("error placing image %s: %w", image.ImageId, pw.pdf.Error())
	}

	pw.pages = append(pw.pages, PageInfo{
		ImageId: image.ImageId,
		Width:   image.PageWidth,
		Height:  image.PageHeight,
	})
	return nil
}

func (pw *PDFWriter) PageCount() int {
	return len(pw.pages)
}

func (pw *PDFWriter) Pages() []PageInfo {
	return pw.pages
}

// Finish serializes the document to dst. The writer cannot be used afterwards.
func (pw *PDFWriter) Finish(dst io.Writer) error {
	if len(pw.pages) == 0 {
		return fmt.Errorf("document has no pages")
	}
	if err := pw.pdf.Output(dst); err != nil {
		return fmt.Errorf("error writing PDF: %w", err)
	}
	return nil
}

package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

type rgb struct{ r, g, b int }

var (
	colorInk     = rgb{44, 62, 80}
	colorMuted   = rgb{100, 100, 100}
	colorFaint   = rgb{150, 150, 150}
	colorRule    = rgb{74, 144, 226}
	colorDanger  = rgb{231, 76, 60}
	colorWarning = rgb{243, 156, 18}
	colorSuccess = rgb{39, 174, 96}
)

const (
	pageLeft  = 10.0
	pageRight = 200.0
)

// PDFWriter 基于 fpdf 生成 A4 单栏报告。
type PDFWriter struct {
	pdf      *fpdf.Fpdf
	tr       func(string) string
	headings int
}

// NewPDFWriter 创建新的 PDF 文档并添加首页。
func NewPDFWriter(createdAt time.Time) *PDFWriter {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageLeft, pageLeft, pageLeft)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetCreator("healthrisk", true)
	if !createdAt.IsZero() {
		pdf.SetCreationDate(createdAt)
	}
	pdf.AddPage()

	return &PDFWriter{
		pdf: pdf,
		// 核心字体使用 cp1252 编码，"²" 等字符需要转换。
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (w *PDFWriter) textColor(c rgb) {
	w.pdf.SetTextColor(c.r, c.g, c.b)
}

func (w *PDFWriter) toneColor(tone Tone) rgb {
	switch tone {
	case ToneDanger:
		return colorDanger
	case ToneWarning:
		return colorWarning
	case ToneSuccess:
		return colorSuccess
	default:
		return colorInk
	}
}

// Title 写入居中大标题。
func (w *PDFWriter) Title(text string) {
	w.pdf.SetTitle(text, true)
	w.pdf.SetFont("Arial", "B", 20)
	w.textColor(colorInk)
	w.pdf.CellFormat(0, 15, w.tr(text), "", 1, "C", false, 0, "")
}

func (w *PDFWriter) Subtitle(text string) {
	w.pdf.SetFont("Arial", "I", 10)
	w.textColor(colorMuted)
	w.pdf.CellFormat(0, 8, w.tr(text), "", 1, "C", false, 0, "")
	w.pdf.Ln(10)
}

// Heading 写入小节标题及下方分隔线。
func (w *PDFWriter) Heading(text string) {
	if w.headings > 0 {
		w.pdf.Ln(10)
	}
	w.headings++

	w.pdf.SetFont("Arial", "B", 14)
	w.textColor(colorInk)
	w.pdf.CellFormat(0, 10, w.tr(text), "", 1, "L", false, 0, "")

	w.pdf.SetLineWidth(0.5)
	w.pdf.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
	y := w.pdf.GetY()
	w.pdf.Line(pageLeft, y, pageRight, y)
	w.pdf.Ln(5)
}

func (w *PDFWriter) LabeledLine(label, value string, tone Tone) {
	w.pdf.SetFont("Arial", "B", 12)
	w.textColor(colorInk)
	w.pdf.CellFormat(60, 8, w.tr(label), "", 0, "L", false, 0, "")

	w.pdf.SetFont("Arial", "", 12)
	w.textColor(w.toneColor(tone))
	w.pdf.CellFormat(0, 8, w.tr(value), "", 1, "L", false, 0, "")
	w.textColor(colorInk)
}

func (w *PDFWriter) TableRow(label, value string) {
	w.pdf.SetFont("Arial", "B", 11)
	w.pdf.CellFormat(80, 7, w.tr(label+":"), "", 0, "L", false, 0, "")
	w.pdf.SetFont("Arial", "", 11)
	w.pdf.CellFormat(0, 7, w.tr(value), "", 1, "L", false, 0, "")
}

func (w *PDFWriter) NumberedItem(n int, text string) {
	w.pdf.SetFont("Arial", "", 10)
	w.pdf.MultiCell(0, 6, w.tr(fmt.Sprintf("%d. %s", n, text)), "", "L", false)
	w.pdf.Ln(2)
}

func (w *PDFWriter) Disclaimer(text string) {
	w.pdf.Ln(10)
	w.pdf.SetFont("Arial", "BI", 8)
	w.textColor(colorMuted)
	w.pdf.MultiCell(0, 4, w.tr(text), "", "L", false)
}

func (w *PDFWriter) Footer(text string) {
	w.pdf.Ln(5)
	w.pdf.SetFont("Arial", "I", 8)
	w.textColor(colorFaint)
	w.pdf.CellFormat(0, 5, w.tr(text), "", 0, "C", false, 0, "")
}

// Finish 输出完整文档；生成过程中任何错误都会导致整个文档作废。
func (w *PDFWriter) Finish() ([]byte, error) {
	if err := w.pdf.Error(); err != nil {
		return nil, fmt.Errorf("report: 生成PDF失败: %w", err)
	}

	var buf bytes.Buffer
	if err := w.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("report: 输出PDF失败: %w", err)
	}
	return buf.Bytes(), nil
}

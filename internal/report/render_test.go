package report

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"healthrisk/internal/risk"
)

type entry struct {
	kind string
	text string
	tone Tone
}

// recordingWriter 记录渲染调用顺序，可选地在 Finish 时返回错误或在写入时 panic。
type recordingWriter struct {
	entries   []entry
	finishErr error
	panicOn   string
}

func (w *recordingWriter) add(kind, text string, tone Tone) {
	if w.panicOn == kind {
		panic("writer fault: " + kind)
	}
	w.entries = append(w.entries, entry{kind: kind, text: text, tone: tone})
}

func (w *recordingWriter) Title(text string)    { w.add("title", text, ToneDefault) }
func (w *recordingWriter) Subtitle(text string) { w.add("subtitle", text, ToneDefault) }
func (w *recordingWriter) Heading(text string)  { w.add("heading", text, ToneDefault) }
func (w *recordingWriter) LabeledLine(label, value string, tone Tone) {
	w.add("line", label+" "+value, tone)
}
func (w *recordingWriter) TableRow(label, value string) { w.add("row", label+": "+value, ToneDefault) }
func (w *recordingWriter) NumberedItem(n int, text string) {
	w.add("item", fmt.Sprintf("%d. %s", n, text), ToneDefault)
}
func (w *recordingWriter) Disclaimer(text string) { w.add("disclaimer", text, ToneDefault) }
func (w *recordingWriter) Footer(text string)     { w.add("footer", text, ToneDefault) }

func (w *recordingWriter) Finish() ([]byte, error) {
	if w.finishErr != nil {
		return nil, w.finishErr
	}
	var buf bytes.Buffer
	for _, e := range w.entries {
		buf.WriteString(e.kind + "|" + e.text + "\n")
	}
	return buf.Bytes(), nil
}

func (w *recordingWriter) kinds(kind string) []entry {
	var out []entry
	for _, e := range w.entries {
		if e.kind == kind {
			out = append(out, e)
		}
	}
	return out
}

var fixedNow = time.Date(2026, time.March, 7, 14, 5, 0, 0, time.UTC)

func newTestRenderer(w *recordingWriter) *Renderer {
	return NewRenderer(Options{
		Footer:    "test footer",
		NewWriter: func(time.Time) Writer { return w },
		Now:       func() time.Time { return fixedNow },
	}, nil)
}

func sampleInput() risk.Input {
	return risk.Input{Age: 30, BMI: 25.0, SystolicBP: 120, Cholesterol: 200, Glucose: 100, Smoking: risk.NonSmoker}
}

func TestRender_DocumentOrder(t *testing.T) {
	w := &recordingWriter{}
	in := sampleInput()
	res := risk.Assess(in)

	doc := newTestRenderer(w).Render(res, in)
	if len(doc) == 0 {
		t.Fatal("expected non-empty document")
	}

	var order []string
	for _, e := range w.entries {
		if len(order) == 0 || order[len(order)-1] != e.kind {
			order = append(order, e.kind)
		}
	}
	want := []string{"title", "subtitle", "heading", "line", "heading", "row", "heading", "item", "disclaimer", "footer"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected section order: %v", order)
	}

	if got := w.entries[1].text; got != "Generated: March 07, 2026 at 14:05" {
		t.Errorf("unexpected timestamp line: %s", got)
	}

	lines := w.kinds("line")
	if lines[0].text != "Risk Level: Moderate Risk" || lines[0].tone != ToneWarning {
		t.Errorf("unexpected risk level line: %+v", lines[0])
	}
	if lines[1].text != "Risk Score: 5.30 / 10" {
		t.Errorf("unexpected score line: %+v", lines[1])
	}

	rows := w.kinds("row")
	wantRows := []string{
		"Age: 30 years",
		"Body Mass Index (BMI): 25.0 kg/m²",
		"Blood Pressure (Systolic): 120 mmHg",
		"Total Cholesterol: 200 mg/dL",
		"Fasting Glucose: 100 mg/dL",
	}
	if len(rows) != len(wantRows) {
		t.Fatalf("expected %d metric rows, got %d", len(wantRows), len(rows))
	}
	for i, row := range rows {
		if row.text != wantRows[i] {
			t.Errorf("row %d: got %q want %q", i, row.text, wantRows[i])
		}
	}

	if footer := w.kinds("footer"); footer[0].text != "test footer" {
		t.Errorf("unexpected footer: %+v", footer)
	}
}

func TestRender_TruncatesRecommendations(t *testing.T) {
	w := &recordingWriter{}
	recs := make([]string, 14)
	for i := range recs {
		recs[i] = fmt.Sprintf("rec %d", i+1)
	}
	res := risk.Result{Tier: risk.TierHigh, Color: risk.TierHigh.Color(), Score: 12.5, Recommendations: recs}

	if doc := newTestRenderer(w).Render(res, sampleInput()); len(doc) == 0 {
		t.Fatal("expected non-empty document")
	}

	items := w.kinds("item")
	if len(items) != MaxRecommendations {
		t.Fatalf("expected %d numbered items, got %d", MaxRecommendations, len(items))
	}
	if items[0].text != "1. rec 1" || items[9].text != "10. rec 10" {
		t.Errorf("unexpected numbering: %q ... %q", items[0].text, items[9].text)
	}

	lines := w.kinds("line")
	if lines[1].text != "Risk Score: 12.50 / 10" {
		t.Errorf("score must not be clamped, got %q", lines[1].text)
	}
	if lines[0].tone != ToneDanger {
		t.Errorf("expected danger tone for high risk, got %v", lines[0].tone)
	}
}

func TestRender_ToneByTier(t *testing.T) {
	cases := map[risk.Tier]Tone{
		risk.TierLow:         ToneSuccess,
		risk.TierLowModerate: ToneWarning,
		risk.TierModerate:    ToneWarning,
		risk.TierHigh:        ToneDanger,
	}
	for tier, want := range cases {
		if got := toneFor(tier); got != want {
			t.Errorf("toneFor(%s) = %v, want %v", tier, got, want)
		}
	}
}

func TestRender_FaultYieldsEmpty(t *testing.T) {
	in := sampleInput()
	res := risk.Assess(in)

	t.Run("finish error", func(t *testing.T) {
		w := &recordingWriter{finishErr: errors.New("encoding fault")}
		if doc := newTestRenderer(w).Render(res, in); len(doc) != 0 {
			t.Fatalf("expected empty document, got %d bytes", len(doc))
		}
	})

	t.Run("panic while writing", func(t *testing.T) {
		w := &recordingWriter{panicOn: "item"}
		if doc := newTestRenderer(w).Render(res, in); len(doc) != 0 {
			t.Fatalf("expected empty document, got %d bytes", len(doc))
		}
	})
}

func TestRender_PDF(t *testing.T) {
	in := risk.Input{Age: 65, BMI: 38.0, SystolicBP: 190, Cholesterol: 260, Glucose: 135, Smoking: risk.CurrentSmoker}
	res := risk.Assess(in)

	r := NewRenderer(Options{Now: func() time.Time { return fixedNow }}, nil)
	doc := r.Render(res, in)
	if len(doc) == 0 {
		t.Fatal("expected PDF bytes")
	}
	if !bytes.HasPrefix(doc, []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", doc[:8])
	}
}

func TestPDFWriter_FinishReportsError(t *testing.T) {
	w := NewPDFWriter(fixedNow)
	w.pdf.SetError(errors.New("forced"))
	w.Title("x")

	data, err := w.Finish()
	if err == nil {
		t.Fatal("expected error from Finish")
	}
	if len(data) != 0 {
		t.Fatalf("expected no data on error, got %d bytes", len(data))
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(fixedNow); got != "health_risk_report_20260307.pdf" {
		t.Fatalf("unexpected file name: %s", got)
	}
}

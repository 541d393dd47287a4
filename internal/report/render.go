package report

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"healthrisk/internal/risk"
)

const (
	// MaxRecommendations 为报告中列出的建议条数上限。
	MaxRecommendations = 10

	reportTitle = "Health Risk Assessment Report"

	disclaimerText = "DISCLAIMER: This report is generated for educational and informational purposes only. " +
		"It is NOT intended to be a substitute for professional medical advice, diagnosis, or treatment. " +
		"Always seek the advice of your physician or other qualified health provider with any questions " +
		"you may have regarding a medical condition. Never disregard professional medical advice or " +
		"delay in seeking it because of something you have read in this report."

	defaultFooter = "Generated by healthrisk health care analysis"

	timestampLayout = "January 02, 2006 at 15:04"
	fileDateLayout  = "20060102"
)

// Options 控制报告渲染行为。
type Options struct {
	Footer    string                 // 页脚文本，为空时使用默认值
	NewWriter func(time.Time) Writer // 文档后端工厂，默认 PDF
	Now       func() time.Time       // 时钟，默认 time.Now
}

// Renderer 将评估结果渲染为报告文档。
type Renderer struct {
	footer    string
	newWriter func(time.Time) Writer
	now       func() time.Time
	logger    *zap.Logger
}

// NewRenderer 创建渲染器。
func NewRenderer(opts Options, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Footer == "" {
		opts.Footer = defaultFooter
	}
	if opts.NewWriter == nil {
		opts.NewWriter = func(ts time.Time) Writer { return NewPDFWriter(ts) }
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Renderer{
		footer:    opts.Footer,
		newWriter: opts.NewWriter,
		now:       opts.Now,
		logger:    logger,
	}
}

// Render 生成报告文档。渲染失败时返回空结果而不是残缺文档，由调用方负责提示。
func (r *Renderer) Render(res risk.Result, in risk.Input) (doc []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("渲染报告异常", zap.Any("panic", rec))
			doc = nil
		}
	}()

	now := r.now()
	w := r.newWriter(now)
	compose(w, res, in, now, r.footer)

	data, err := w.Finish()
	if err != nil {
		r.logger.Error("渲染报告失败", zap.Error(err))
		return nil
	}
	if len(data) == 0 {
		r.logger.Error("渲染报告失败", zap.String("reason", "文档为空"))
		return nil
	}

	r.logger.Debug("报告渲染完成",
		zap.String("tier", res.Tier.Key()),
		zap.Int("bytes", len(data)),
	)
	return data
}

func compose(w Writer, res risk.Result, in risk.Input, now time.Time, footer string) {
	w.Title(reportTitle)
	w.Subtitle("Generated: " + now.Format(timestampLayout))

	w.Heading("Risk Assessment Summary")
	w.LabeledLine("Risk Level:", res.Tier.String(), toneFor(res.Tier))
	// 得分不截断到 10，超过时按原值输出。
	w.LabeledLine("Risk Score:", fmt.Sprintf("%.2f / 10", res.Score), ToneDefault)

	w.Heading("Your Health Metrics")
	w.TableRow("Age", fmt.Sprintf("%d years", in.Age))
	w.TableRow("Body Mass Index (BMI)", fmt.Sprintf("%.1f kg/m²", in.BMI))
	w.TableRow("Blood Pressure (Systolic)", fmt.Sprintf("%d mmHg", in.SystolicBP))
	w.TableRow("Total Cholesterol", fmt.Sprintf("%d mg/dL", in.Cholesterol))
	w.TableRow("Fasting Glucose", fmt.Sprintf("%d mg/dL", in.Glucose))

	w.Heading("Personalized Recommendations")
	recs := res.Recommendations
	if len(recs) > MaxRecommendations {
		recs = recs[:MaxRecommendations]
	}
	for i, rec := range recs {
		w.NumberedItem(i+1, rec)
	}

	w.Disclaimer(disclaimerText)
	w.Footer(footer)
}

func toneFor(t risk.Tier) Tone {
	switch t {
	case risk.TierHigh:
		return ToneDanger
	case risk.TierModerate, risk.TierLowModerate:
		return ToneWarning
	default:
		return ToneSuccess
	}
}

// FileName 返回带日期的下载文件名。
func FileName(t time.Time) string {
	return fmt.Sprintf("health_risk_report_%s.pdf", t.Format(fileDateLayout))
}

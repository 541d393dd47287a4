package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthrisk/internal/category"
	"healthrisk/internal/monitor"
	"healthrisk/internal/report"
	"healthrisk/internal/risk"
)

// FactorView 为单个因素的评分明细。
type FactorView struct {
	Factor  string  `json:"factor"`
	Bucket  string  `json:"bucket"`
	Penalty float64 `json:"penalty"`
}

// AssessmentView 为评估接口的返回内容。
type AssessmentView struct {
	Tier            string           `json:"tier"`
	Label           string           `json:"label"`
	Color           string           `json:"color"`
	Score           float64          `json:"score"`
	Interpretation  string           `json:"interpretation"`
	Categories      category.Summary `json:"categories"`
	Breakdown       []FactorView     `json:"breakdown"`
	Recommendations []string         `json:"recommendations"`
	Disclaimer      string           `json:"disclaimer"`
}

type handler struct {
	renderer *report.Renderer
	monitor  *monitor.Service
	logger   *zap.Logger
	now      func() time.Time
}

func (h *handler) bindInput(c *gin.Context) (risk.Input, bool) {
	var req AssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return risk.Input{}, false
	}
	in, err := req.Input()
	if err != nil {
		badRequest(c, err)
		return risk.Input{}, false
	}
	return in, true
}

func (h *handler) assess(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	res := risk.Assess(in)
	h.monitor.RecordAssessment(monitor.SourceAPI, res)

	breakdown := risk.Breakdown(in)
	view := AssessmentView{
		Tier:            res.Tier.Key(),
		Label:           res.Tier.String(),
		Color:           res.Color,
		Score:           res.Score,
		Interpretation:  risk.Interpretation(res.Tier),
		Categories:      category.Summarize(in.BMI, in.SystolicBP, in.Cholesterol, in.Glucose),
		Breakdown:       make([]FactorView, 0, len(breakdown)),
		Recommendations: res.Recommendations,
		Disclaimer:      risk.Disclaimer,
	}
	for _, fs := range breakdown {
		view.Breakdown = append(view.Breakdown, FactorView{
			Factor:  string(fs.Factor),
			Bucket:  fs.Bucket,
			Penalty: fs.Penalty,
		})
	}

	h.logger.Info("完成风险评估",
		zap.String("request_id", requestID(c)),
		zap.String("tier", view.Tier),
		zap.Float64("score", res.Score),
	)
	success(c, view)
}

func (h *handler) report(c *gin.Context) {
	in, ok := h.bindInput(c)
	if !ok {
		return
	}

	res := risk.Assess(in)
	h.monitor.RecordAssessment(monitor.SourceAPI, res)

	doc := h.renderer.Render(res, in)
	if len(doc) == 0 {
		h.monitor.RecordReport(monitor.ReportFailed, 0)
		h.logger.Error("生成报告失败", zap.String("request_id", requestID(c)))
		fail(c, http.StatusInternalServerError, "Failed to generate PDF report.")
		return
	}
	h.monitor.RecordReport(monitor.ReportRendered, len(doc))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.FileName(h.now())))
	c.Header("X-Risk-Disclaimer", risk.Disclaimer)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

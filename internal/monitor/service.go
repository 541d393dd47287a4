package monitor

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"healthrisk/internal/risk"
)

const namespace = "healthrisk"

// Service 负责记录评估与报告相关的运行指标。
type Service struct {
	registry    *prometheus.Registry
	assessments *prometheus.CounterVec
	scores      prometheus.Histogram
	reports     *prometheus.CounterVec
	reportBytes prometheus.Histogram
	logger      *zap.Logger
}

// NewService 创建独立注册表并注册全部指标。
func NewService(logger *zap.Logger) (*Service, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Service{
		registry: prometheus.NewRegistry(),
		assessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "assessments_total",
			Help:      "Number of risk assessments by tier and source.",
		}, []string{"tier", "source"}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "assessment_score",
			Help:      "Distribution of composite risk scores.",
			Buckets:   []float64{1, 2, 3, 4, 5, 7, 10, 13, 17},
		}),
		reports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_total",
			Help:      "Number of report renders by outcome.",
		}, []string{"outcome"}),
		reportBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "report_bytes",
			Help:      "Size of rendered report documents.",
			Buckets:   prometheus.ExponentialBuckets(1024, 2, 8),
		}),
		logger: logger,
	}

	for _, c := range []prometheus.Collector{
		s.assessments,
		s.scores,
		s.reports,
		s.reportBytes,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := s.registry.Register(c); err != nil {
			return nil, fmt.Errorf("monitor: 注册指标失败: %w", err)
		}
	}

	return s, nil
}

// RecordAssessment 记录一次评估结果。
func (s *Service) RecordAssessment(source Source, res risk.Result) {
	s.assessments.WithLabelValues(res.Tier.Key(), string(source)).Inc()
	s.scores.Observe(res.Score)
}

// RecordReport 记录一次报告渲染，size 为文档字节数。
func (s *Service) RecordReport(outcome ReportOutcome, size int) {
	s.reports.WithLabelValues(string(outcome)).Inc()
	if outcome == ReportRendered {
		s.reportBytes.Observe(float64(size))
		return
	}
	s.logger.Warn("报告渲染失败计数增加")
}

// WriteTextfile 以文本格式写出全部指标，供 node_exporter textfile 采集。
func (s *Service) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, s.registry); err != nil {
		return fmt.Errorf("monitor: 写出指标文件失败: %w", err)
	}
	return nil
}

// Handler 返回指标暴露接口。
func (s *Service) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{
		Registry: s.registry,
	})
}

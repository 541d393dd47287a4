package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"healthrisk/internal/app"
	"healthrisk/internal/category"
	"healthrisk/internal/config"
	"healthrisk/internal/log"
	"healthrisk/internal/monitor"
	"healthrisk/internal/report"
	"healthrisk/internal/risk"
)

var errRenderFailed = errors.New("Failed to generate PDF report.")

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, time.Now); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}

// run 解析参数、完成评估并输出 PDF 报告。
func run(args []string, stdout io.Writer, now func() time.Time) error {
	fs := flag.NewFlagSet("riskreport", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		configPath   string
		outDir       string
		textfilePath string
		req          app.AssessmentRequest
	)
	fs.StringVar(&configPath, "config", "", "配置文件路径")
	fs.IntVar(&req.Age, "age", 30, "年龄（岁）")
	fs.Float64Var(&req.BMI, "bmi", 25.0, "BMI（kg/m²）")
	fs.IntVar(&req.SystolicBP, "bp", 120, "收缩压（mmHg）")
	fs.IntVar(&req.Cholesterol, "cholesterol", 200, "总胆固醇（mg/dL）")
	fs.IntVar(&req.Glucose, "glucose", 100, "空腹血糖（mg/dL）")
	fs.StringVar(&req.Smoking, "smoking", risk.NonSmoker.String(), "吸烟状态")
	fs.StringVar(&outDir, "out", "", "报告输出目录，覆盖配置")
	fs.StringVar(&textfilePath, "metrics-textfile", "", "评估指标输出文件（node_exporter textfile 格式）")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("解析参数失败: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if outDir != "" {
		cfg.Report.OutputDir = outDir
	}

	logger, err := log.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if err := req.Validate(); err != nil {
		return fmt.Errorf("输入参数无效: %w", err)
	}
	in, err := req.Input()
	if err != nil {
		return err
	}

	metrics, err := monitor.NewService(logger)
	if err != nil {
		return err
	}

	res := risk.Assess(in)
	metrics.RecordAssessment(monitor.SourceCLI, res)
	printSummary(stdout, res, in)

	renderer := report.NewRenderer(report.Options{Footer: cfg.Report.Footer, Now: now}, logger.Named("report"))
	doc := renderer.Render(res, in)
	if len(doc) == 0 {
		metrics.RecordReport(monitor.ReportFailed, 0)
		return errRenderFailed
	}
	metrics.RecordReport(monitor.ReportRendered, len(doc))

	if err := os.MkdirAll(cfg.Report.OutputDir, 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	path := filepath.Join(cfg.Report.OutputDir, report.FileName(now()))
	if err := os.WriteFile(path, doc, 0o644); err != nil {
		return fmt.Errorf("写入报告失败: %w", err)
	}
	logger.Info("报告已生成", zap.String("path", path), zap.Int("bytes", len(doc)))
	fmt.Fprintf(stdout, "\nReport: %s\n", path)

	if textfilePath != "" {
		if err := metrics.WriteTextfile(textfilePath); err != nil {
			return fmt.Errorf("写入指标文件失败: %w", err)
		}
	}

	return nil
}

func printSummary(w io.Writer, res risk.Result, in risk.Input) {
	summary := category.Summarize(in.BMI, in.SystolicBP, in.Cholesterol, in.Glucose)

	fmt.Fprintf(w, "Risk Level: %s\n", res.Tier)
	fmt.Fprintf(w, "Risk Score: %.2f / 10\n", res.Score)
	fmt.Fprintf(w, "%s\n\n", risk.Interpretation(res.Tier))

	fmt.Fprintf(w, "BMI: %.1f (%s, %s)\n", in.BMI, summary.BMI.Category, summary.BMI.Status)
	fmt.Fprintf(w, "Blood Pressure: %d mmHg (%s, %s)\n", in.SystolicBP, summary.BloodPressure.Category, summary.BloodPressure.Status)
	fmt.Fprintf(w, "Cholesterol: %d mg/dL (%s, %s)\n", in.Cholesterol, summary.Cholesterol.Category, summary.Cholesterol.Status)
	fmt.Fprintf(w, "Glucose: %d mg/dL (%s, %s)\n", in.Glucose, summary.Glucose.Category, summary.Glucose.Status)

	fmt.Fprintln(w, "\nRecommendations:")
	for i, rec := range res.Recommendations {
		fmt.Fprintf(w, "%d. %s\n", i+1, rec)
	}
}

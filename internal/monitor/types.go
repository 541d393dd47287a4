package monitor

// ReportOutcome 表示报告渲染结果。
type ReportOutcome string

const (
	ReportRendered ReportOutcome = "rendered"
	ReportFailed   ReportOutcome = "failed"
)

// Source 标识评估请求的来源。
type Source string

const (
	SourceAPI Source = "api"
	SourceCLI Source = "cli"
)

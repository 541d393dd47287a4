package report

// Tone 描述文本的语义颜色，由具体文档后端映射为实际颜色。
type Tone int

const (
	ToneDefault Tone = iota
	ToneDanger
	ToneWarning
	ToneSuccess
)

// Writer 抽象报告文档的生成过程，便于替换底层文档库。
//
// 实现可以在内部累积错误，统一在 Finish 时返回；Finish 返回错误时
// 已写入的内容一律丢弃。
type Writer interface {
	Title(text string)
	Subtitle(text string)
	Heading(text string)
	LabeledLine(label, value string, tone Tone)
	TableRow(label, value string)
	NumberedItem(n int, text string)
	Disclaimer(text string)
	Footer(text string)
	Finish() ([]byte, error)
}

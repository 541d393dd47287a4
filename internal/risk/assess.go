package risk

import (
	"github.com/shopspring/decimal"
)

// Assess 根据临床输入计算风险得分、等级与建议。
//
// 各因素独立查表，扣分以十进制精确累加；建议按 BMI、血压、胆固醇、血糖、
// 年龄、吸烟的顺序输出，最后追加五条通用建议。函数无副作用，对声明值域内的
// 任意输入均返回结果。
func Assess(in Input) Result {
	score := decimal.Zero
	recommendations := make([]string, 0, len(scoringTables)+len(generalWellness))

	for _, table := range scoringTables {
		b, ok := table.classify(in)
		if !ok {
			continue
		}
		score = score.Add(b.penalty)
		if b.advice != "" {
			recommendations = append(recommendations, b.advice)
		}
	}

	recommendations = append(recommendations, generalWellness...)

	value := score.InexactFloat64()
	tier := TierForScore(value)

	return Result{
		Tier:            tier,
		Color:           tier.Color(),
		Score:           value,
		Recommendations: recommendations,
	}
}

// Breakdown 返回每个因素命中的分段及扣分，顺序与 Assess 的累加顺序一致。
func Breakdown(in Input) []FactorScore {
	out := make([]FactorScore, 0, len(scoringTables))
	for _, table := range scoringTables {
		b, ok := table.classify(in)
		if !ok {
			continue
		}
		out = append(out, FactorScore{
			Factor:  table.factor,
			Bucket:  b.label,
			Penalty: b.penalty.InexactFloat64(),
			Advice:  b.advice,
		})
	}
	return out
}

// TierForScore 将得分映射为风险等级。
func TierForScore(score float64) Tier {
	for _, threshold := range tierThresholds {
		if score >= threshold.min {
			return threshold.tier
		}
	}
	return TierLow
}

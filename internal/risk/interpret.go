package risk

const fallbackInterpretation = "Please consult a healthcare professional for interpretation."

var interpretations = map[Tier]string{
	TierLow: "Your current health metrics indicate a low risk profile. " +
		"Continue maintaining healthy lifestyle habits and regular check-ups.",
	TierLowModerate: "Your health metrics show some areas that could benefit from attention. " +
		"Minor lifestyle modifications may help reduce your risk further.",
	TierModerate: "Your health metrics indicate moderate risk factors. " +
		"It's important to address these through lifestyle changes and possibly medical consultation.",
	TierHigh: "Your health metrics indicate significant risk factors. " +
		"We strongly recommend consulting with a healthcare professional for a comprehensive evaluation and treatment plan.",
}

// Interpretation 返回风险等级的文字解读。
func Interpretation(t Tier) string {
	if text, ok := interpretations[t]; ok {
		return text
	}
	return fallbackInterpretation
}

// Disclaimer 为每个评估结果旁展示的医疗免责声明。
const Disclaimer = "This risk assessment is based on simplified algorithms and is for educational purposes only. " +
	"It does NOT replace professional medical evaluation. Please consult with a qualified healthcare provider " +
	"for accurate diagnosis and personalized medical advice."

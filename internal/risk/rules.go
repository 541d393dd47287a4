package risk

import (
	"math"

	"github.com/shopspring/decimal"
)

// bucket 为某个因素的一个取值分段：命中条件、扣分与建议文本。
// advice 为空表示该分段不输出建议。
type bucket struct {
	label   string
	match   func(Input) bool
	penalty decimal.Decimal
	advice  string
}

// factorTable 为单个因素的分段表，各分段互不重叠。
type factorTable struct {
	factor  Factor
	buckets []bucket
}

// classify 返回输入命中的分段；超出声明值域（如 NaN）时不命中。
func (t factorTable) classify(in Input) (bucket, bool) {
	for _, b := range t.buckets {
		if b.match(in) {
			return b, true
		}
	}
	return bucket{}, false
}

var (
	negInf = math.Inf(-1)
	posInf = math.Inf(1)
)

func pts(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// span 构造左闭右开区间 [lo, hi) 的命中条件。
func span(metric func(Input) float64, lo, hi float64) func(Input) bool {
	return func(in Input) bool {
		v := metric(in)
		return v >= lo && v < hi
	}
}

func smokingIs(status SmokingStatus) func(Input) bool {
	return func(in Input) bool {
		return in.Smoking == status
	}
}

func bmiOf(in Input) float64         { return in.BMI }
func bpOf(in Input) float64          { return float64(in.SystolicBP) }
func cholesterolOf(in Input) float64 { return float64(in.Cholesterol) }
func glucoseOf(in Input) float64     { return float64(in.Glucose) }
func ageOf(in Input) float64         { return float64(in.Age) }

// scoringTables 按固定顺序列出评分分段表，建议输出顺序与此一致。
// 与 category 包中的展示分类表相互独立，阈值不可互相推导。
var scoringTables = []factorTable{
	{
		factor: FactorBMI,
		buckets: []bucket{
			{"underweight", span(bmiOf, negInf, 18.5), pts("1.0"),
				"Your BMI is below normal. Consider consulting a nutritionist to reach a healthy weight."},
			{"healthy", span(bmiOf, 18.5, 25), pts("0"),
				"Your BMI is in the healthy range. Maintain your current lifestyle!"},
			{"overweight", span(bmiOf, 25, 30), pts("1.5"),
				"Your BMI indicates overweight. Regular exercise and balanced diet can help reduce health risks."},
			{"obesity_class_1", span(bmiOf, 30, 35), pts("2.5"),
				"Your BMI indicates obesity (Class I). Consult a healthcare provider for a weight management plan."},
			{"severe_obesity", span(bmiOf, 35, posInf), pts("3.5"),
				"Your BMI indicates severe obesity. Medical supervision is strongly recommended for weight management."},
		},
	},
	{
		factor: FactorBP,
		buckets: []bucket{
			{"low", span(bpOf, negInf, 90), pts("1.0"),
				"Your blood pressure is low. Monitor for symptoms of hypotension and consult a doctor if concerned."},
			{"optimal", span(bpOf, 90, 120), pts("0"),
				"Your blood pressure is optimal. Keep up the good work!"},
			{"elevated", span(bpOf, 120, 130), pts("0.5"),
				"Your blood pressure is elevated. Lifestyle modifications may help prevent hypertension."},
			{"stage_1_hypertension", span(bpOf, 130, 140), pts("1.5"),
				"Your blood pressure indicates Stage 1 hypertension. Consult your doctor about management strategies."},
			{"stage_2_hypertension", span(bpOf, 140, 180), pts("2.5"),
				"Your blood pressure indicates Stage 2 hypertension. Medical treatment is likely needed."},
			{"crisis", span(bpOf, 180, posInf), pts("4.0"),
				"Your blood pressure is dangerously high. Seek immediate medical attention!"},
		},
	},
	{
		factor: FactorCholesterol,
		buckets: []bucket{
			{"desirable", span(cholesterolOf, negInf, 200), pts("0"),
				"Your cholesterol level is desirable. Continue heart-healthy habits!"},
			{"borderline_high", span(cholesterolOf, 200, 240), pts("1.5"),
				"Your cholesterol is borderline high. Consider dietary changes to reduce cardiovascular risk."},
			{"high", span(cholesterolOf, 240, posInf), pts("2.5"),
				"Your cholesterol is high. Consult your doctor about medication and lifestyle changes."},
		},
	},
	{
		factor: FactorGlucose,
		buckets: []bucket{
			{"low", span(glucoseOf, negInf, 70), pts("1.0"),
				"Your glucose level is low. Monitor for hypoglycemia symptoms and consult your doctor."},
			{"normal", span(glucoseOf, 70, 100), pts("0"),
				"Your fasting glucose is normal. Maintain a balanced diet!"},
			{"prediabetes", span(glucoseOf, 100, 126), pts("1.5"),
				"Your glucose indicates prediabetes. Lifestyle changes can prevent type 2 diabetes."},
			{"diabetes_range", span(glucoseOf, 126, posInf), pts("3.0"),
				"Your glucose level suggests diabetes. Consult your doctor for proper diagnosis and management."},
		},
	},
	{
		factor: FactorAge,
		buckets: []bucket{
			{"under_30", span(ageOf, negInf, 30), pts("0"), ""},
			{"30_to_44", span(ageOf, 30, 45), pts("0.3"), ""},
			{"45_to_59", span(ageOf, 45, 60), pts("0.8"),
				"Age is a risk factor. Regular health screenings become increasingly important."},
			{"60_plus", span(ageOf, 60, posInf), pts("1.2"),
				"At your age, regular medical check-ups and monitoring are essential."},
		},
	},
	{
		factor: FactorSmoking,
		buckets: []bucket{
			{"current", smokingIs(CurrentSmoker), pts("2.0"),
				"Smoking significantly increases health risks. Consider a smoking cessation program."},
			{"former", smokingIs(FormerSmoker), pts("0.5"),
				"Great job quitting smoking! Continue to avoid tobacco products."},
			{"non_smoker", smokingIs(NonSmoker), pts("0"),
				"Excellent! Staying smoke-free is one of the best health decisions."},
		},
	},
}

// generalWellness 追加在所有因素建议之后，顺序固定。
var generalWellness = []string{
	"Engage in at least 150 minutes of moderate aerobic activity per week.",
	"Stay hydrated and maintain a balanced diet rich in fruits, vegetables, and whole grains.",
	"Get 7-9 hours of quality sleep each night.",
	"Manage stress through relaxation techniques, meditation, or hobbies.",
	"Schedule regular check-ups with your healthcare provider.",
}

// GeneralWellness 返回固定的通用健康建议副本。
func GeneralWellness() []string {
	out := make([]string, len(generalWellness))
	copy(out, generalWellness)
	return out
}

// tierThresholds 自高到低排列，首个满足的阈值决定等级。
var tierThresholds = []struct {
	min  float64
	tier Tier
}{
	{7, TierHigh},
	{4, TierModerate},
	{2, TierLowModerate},
}

package category

const (
	StatusNormal   = "Normal"
	StatusElevated = "Elevated"
)

func status(normal bool) string {
	if normal {
		return StatusNormal
	}
	return StatusElevated
}

// BMIStatus 用于指标卡片的简要状态，正常区间为 [18.5, 24.9]。
func BMIStatus(bmi float64) string {
	return status(bmi >= 18.5 && bmi <= 24.9)
}

// BloodPressureStatus 收缩压低于 120 视为正常。
func BloodPressureStatus(systolic int) string {
	return status(systolic < 120)
}

// CholesterolStatus 总胆固醇低于 200 视为正常。
func CholesterolStatus(cholesterol int) string {
	return status(cholesterol < 200)
}

// GlucoseStatus 空腹血糖低于 100 视为正常。
func GlucoseStatus(glucose int) string {
	return status(glucose < 100)
}

// Summary 汇总四项指标的分类与状态。
type Summary struct {
	BMI           Entry `json:"bmi"`
	BloodPressure Entry `json:"blood_pressure"`
	Cholesterol   Entry `json:"cholesterol"`
	Glucose       Entry `json:"glucose"`
}

// Entry 为单项指标的展示信息。
type Entry struct {
	Category string `json:"category"`
	Status   string `json:"status"`
}

// Summarize 生成展示用的指标汇总。
func Summarize(bmi float64, systolic, cholesterol, glucose int) Summary {
	return Summary{
		BMI:           Entry{Category: BMI(bmi), Status: BMIStatus(bmi)},
		BloodPressure: Entry{Category: BloodPressure(systolic), Status: BloodPressureStatus(systolic)},
		Cholesterol:   Entry{Category: Cholesterol(cholesterol), Status: CholesterolStatus(cholesterol)},
		Glucose:       Entry{Category: Glucose(glucose), Status: GlucoseStatus(glucose)},
	}
}

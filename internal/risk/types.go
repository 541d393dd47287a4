package risk

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSmokingStatus 表示无法识别的吸烟状态。
var ErrUnknownSmokingStatus = errors.New("risk: 未知的吸烟状态")

// SmokingStatus 描述吸烟史。
type SmokingStatus int

const (
	NonSmoker SmokingStatus = iota
	FormerSmoker
	CurrentSmoker
)

// String 返回表单中使用的展示文本。
func (s SmokingStatus) String() string {
	switch s {
	case FormerSmoker:
		return "Former smoker"
	case CurrentSmoker:
		return "Current smoker"
	default:
		return "Non-smoker"
	}
}

// ParseSmokingStatus 解析表单提交的吸烟状态，兼容展示文本与简写。
func ParseSmokingStatus(value string) (SmokingStatus, error) {
	normalized := strings.ToLower(strings.Join(strings.Fields(value), " "))
	normalized = strings.ReplaceAll(normalized, "-", " ")

	switch normalized {
	case "non smoker", "non", "never", "none":
		return NonSmoker, nil
	case "former smoker", "former", "ex smoker":
		return FormerSmoker, nil
	case "current smoker", "current", "smoker":
		return CurrentSmoker, nil
	default:
		return NonSmoker, fmt.Errorf("%w: %q", ErrUnknownSmokingStatus, value)
	}
}

// Input 为一次评估的临床输入，由调用方完成范围校验。
type Input struct {
	Age         int           // 年龄，1-120
	BMI         float64       // 体重指数，10.0-60.0
	SystolicBP  int           // 收缩压 mmHg，60-250
	Cholesterol int           // 总胆固醇 mg/dL，100-400
	Glucose     int           // 空腹血糖 mg/dL，50-300
	Smoking     SmokingStatus // 吸烟状态
}

// Tier 表示风险等级，数值越大越严重。
type Tier int

const (
	TierLow Tier = iota
	TierLowModerate
	TierModerate
	TierHigh
)

// String 返回等级展示名称。
func (t Tier) String() string {
	switch t {
	case TierLow:
		return "Low Risk"
	case TierLowModerate:
		return "Low-Moderate Risk"
	case TierModerate:
		return "Moderate Risk"
	case TierHigh:
		return "High Risk"
	default:
		return "Unknown Risk"
	}
}

// Key 返回稳定的机器可读标识，用于接口与指标标签。
func (t Tier) Key() string {
	switch t {
	case TierLow:
		return "low"
	case TierLowModerate:
		return "low_moderate"
	case TierModerate:
		return "moderate"
	case TierHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Color 返回与等级一一对应的展示颜色。
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return "#E74C3C"
	case TierModerate:
		return "#F39C12"
	case TierLowModerate:
		return "#F9A825"
	default:
		return "#27AE60"
	}
}

// Result 为评估输出，每次调用重新生成。
type Result struct {
	Tier            Tier
	Color           string
	Score           float64
	Recommendations []string
}

// Factor 标识参与评分的风险因素。
type Factor string

const (
	FactorBMI         Factor = "bmi"
	FactorBP          Factor = "blood_pressure"
	FactorCholesterol Factor = "cholesterol"
	FactorGlucose     Factor = "glucose"
	FactorAge         Factor = "age"
	FactorSmoking     Factor = "smoking"
)

// FactorScore 记录单个因素命中的分段与扣分。
type FactorScore struct {
	Factor  Factor
	Bucket  string
	Penalty float64
	Advice  string
}

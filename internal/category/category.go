// Package category 提供健康指标的展示分类。
//
// 这里的分段只用于展示，和 risk 包的评分分段各自维护：BMI 多出两级肥胖细分，
// 其余指标的标签也不同，两张表不能互相推导或合并。
package category

import "math"

type band struct {
	upper float64 // 右开上界
	label string
}

func lookup(bands []band, value float64) string {
	for _, b := range bands {
		if value < b.upper {
			return b.label
		}
	}
	return bands[len(bands)-1].label
}

var bmiBands = []band{
	{18.5, "Underweight"},
	{25, "Normal Weight"},
	{30, "Overweight"},
	{35, "Obese (Class I)"},
	{40, "Obese (Class II)"},
	{math.Inf(1), "Obese (Class III)"},
}

var bloodPressureBands = []band{
	{90, "Low"},
	{120, "Normal"},
	{130, "Elevated"},
	{140, "High (Stage 1)"},
	{180, "High (Stage 2)"},
	{math.Inf(1), "Hypertensive Crisis"},
}

var cholesterolBands = []band{
	{200, "Desirable"},
	{240, "Borderline High"},
	{math.Inf(1), "High"},
}

var glucoseBands = []band{
	{70, "Low"},
	{100, "Normal"},
	{126, "Prediabetes"},
	{math.Inf(1), "Diabetes Range"},
}

// BMI 返回体重指数分类。
func BMI(bmi float64) string {
	return lookup(bmiBands, bmi)
}

// BloodPressure 返回收缩压分类。
func BloodPressure(systolic int) string {
	return lookup(bloodPressureBands, float64(systolic))
}

// Cholesterol 返回总胆固醇分类。
func Cholesterol(cholesterol int) string {
	return lookup(cholesterolBands, float64(cholesterol))
}

// Glucose 返回空腹血糖分类。
func Glucose(glucose int) string {
	return lookup(glucoseBands, float64(glucose))
}

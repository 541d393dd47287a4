package app

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"healthrisk/internal/risk"
)

// AssessmentRequest 为表单提交的评估参数，取值范围与表单控件一致。
type AssessmentRequest struct {
	Age         int     `json:"age" binding:"required,min=1,max=120"`
	BMI         float64 `json:"bmi" binding:"required,min=10,max=60"`
	SystolicBP  int     `json:"systolic_bp" binding:"required,min=60,max=250"`
	Cholesterol int     `json:"cholesterol" binding:"required,min=100,max=400"`
	Glucose     int     `json:"glucose" binding:"required,min=50,max=300"`
	Smoking     string  `json:"smoking" binding:"omitempty,smoking"`
}

// Input 转换为评估引擎输入，未填写吸烟状态时按不吸烟处理。
func (r AssessmentRequest) Input() (risk.Input, error) {
	smoking := risk.NonSmoker
	if strings.TrimSpace(r.Smoking) != "" {
		parsed, err := risk.ParseSmokingStatus(r.Smoking)
		if err != nil {
			return risk.Input{}, err
		}
		smoking = parsed
	}

	return risk.Input{
		Age:         r.Age,
		BMI:         r.BMI,
		SystolicBP:  r.SystolicBP,
		Cholesterol: r.Cholesterol,
		Glucose:     r.Glucose,
		Smoking:     smoking,
	}, nil
}

// Validate 使用与 HTTP 接口相同的规则校验请求。
func (r AssessmentRequest) Validate() error {
	registerValidators()
	return binding.Validator.ValidateStruct(r)
}

var registerOnce sync.Once

// registerValidators 向 gin 默认校验器注册自定义规则，并使用 json 字段名报告错误。
func registerValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("smoking", func(fl validator.FieldLevel) bool {
			_, err := risk.ParseSmokingStatus(fl.Field().String())
			return err == nil
		})
	})
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

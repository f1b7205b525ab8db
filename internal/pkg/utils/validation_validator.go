package utils

import (
	"agenda-sync-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate       *validator.Validate
	clockHHMMRegex = regexp.MustCompile(constvars.RegexClockHHMM)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("clock_hhmm", validateClockHHMM)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClockHHMM(fl validator.FieldLevel) bool {
	return clockHHMMRegex.MatchString(fl.Field().String())
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

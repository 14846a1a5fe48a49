package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/home-service/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

var (
	isdPattern     = regexp.MustCompile(`^\+[1-9]\d{0,3}$`)
	otpCodePattern = regexp.MustCompile(`^\d{6}$`)
)

var tagMessages = map[string]string{
	"required":      "is required",
	"email":         "must be a valid email",
	"min":           "is too short",
	"max":           "is too long",
	"gte":           "is too small",
	"lte":           "is too large",
	"isd":           "must be a dialing code like +966",
	"otpcode":       "must be a 6 digit code",
	"servicestatus": "must be one of pending, in-progress, finished, cancelled",
	"fieldaction":   "must be one of en-route, arrived, awaiting-confirmation",
	"oneof":         "has an unsupported value",
	"required_with": "is required together with its pair",
}

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	nv := gpvalidator.New()
	// report wire names instead of Go field names
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = nv.RegisterValidation("isd", func(fl gpvalidator.FieldLevel) bool {
		return isdPattern.MatchString(fl.Field().String())
	})
	_ = nv.RegisterValidation("otpcode", func(fl gpvalidator.FieldLevel) bool {
		return otpCodePattern.MatchString(fl.Field().String())
	})
	_ = nv.RegisterValidation("servicestatus", func(fl gpvalidator.FieldLevel) bool {
		return constant.ServiceStatus(fl.Field().String()).Valid()
	})
	_ = nv.RegisterValidation("fieldaction", func(fl gpvalidator.FieldLevel) bool {
		return constant.FieldAction(fl.Field().String()).Valid()
	})
	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}

// FieldErrors flattens validation errors into a field -> message map.
func FieldErrors(err error) map[string]string {
	var validationErr gpvalidator.ValidationErrors
	if !errors.As(err, &validationErr) {
		return nil
	}

	out := make(map[string]string, len(validationErr))
	for _, e := range validationErr {
		msg, ok := tagMessages[e.Tag()]
		if !ok {
			msg = fmt.Sprintf("failed on %s", e.Tag())
		}
		out[e.Field()] = msg
	}
	return out
}

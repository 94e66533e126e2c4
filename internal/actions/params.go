package actions

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"

	"magento-commerce-actions/internal/apierror"
)

func newValidator() *validator.Validate {
	v := validator.New()
	// report parameters by their argument names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// bind decodes the argument bag into params and validates it. The first
// failing parameter in declaration order is reported.
func (a *Actions) bind(args Args, params interface{}) *apierror.Error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           params,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			jsonStringHook,
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return apierror.Unexpected()
	}
	if err := decoder.Decode(args); err != nil {
		return decodeError(err)
	}

	if err := a.validator.Struct(params); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return validationError(verrs[0])
		}
		return apierror.InvalidArgument(err.Error())
	}
	return nil
}

// jsonStringHook accepts JSON encoded objects and arrays for structured
// parameters, as sent by clients that flatten everything into strings.
func jsonStringHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Struct, reflect.Map, reflect.Slice:
	default:
		return data, nil
	}
	s := strings.TrimSpace(data.(string))
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return data, nil
	}
	var out interface{}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, fmt.Errorf("malformed JSON value: %w", err)
	}
	return out, nil
}

func decodeError(err error) *apierror.Error {
	var merr *mapstructure.Error
	if errors.As(err, &merr) && len(merr.Errors) > 0 {
		return apierror.InvalidArgument(merr.Errors[0])
	}
	return apierror.InvalidArgument(err.Error())
}

func validationError(fe validator.FieldError) *apierror.Error {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "required_with", "required_if":
		return apierror.MissingProperty(field)
	case "min", "gte":
		return apierror.InvalidArgument(fmt.Sprintf("Parameter '%s' must be greater or equal to %s", field, fe.Param()))
	case "email":
		return apierror.InvalidArgument(fmt.Sprintf("Parameter '%s' must be a valid email address", field))
	case "oneof":
		return apierror.InvalidArgument(fmt.Sprintf("Parameter '%s' must be one of [%s]", field, fe.Param()))
	case "len":
		return apierror.InvalidArgument(fmt.Sprintf("Parameter '%s' must have length %s", field, fe.Param()))
	default:
		return apierror.InvalidArgument(fmt.Sprintf("Parameter '%s' is invalid", field))
	}
}

// fieldPath drops the struct name from the validator namespace, so nested
// fields read as "address.city".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

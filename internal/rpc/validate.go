package rpc

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate       = newValidator()
	customMessages = map[string]string{}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	return v
}

// RegisterValidation adds a string validation tag usable in input structs.
// It must be called before serving, typically from an init function.
func RegisterValidation(tag, message string, fn func(value string) bool) error {
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.String {
			return false
		}
		return fn(fl.Field().String())
	})
	if err != nil {
		return err
	}
	customMessages[tag] = message
	return nil
}

func decodeInput[In any](raw json.RawMessage) (In, error) {
	var in In

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null")) {
		if err := json.Unmarshal(trimmed, &in); err != nil {
			var syntaxErr *json.SyntaxError
			if errors.As(err, &syntaxErr) {
				return in, &Error{Code: CodeParseError, Message: "input is not valid JSON", Cause: err}
			}
			return in, &Error{Code: CodeBadRequest, Message: "invalid input: " + err.Error(), Cause: err}
		}
	}

	if err := validateInput(in); err != nil {
		return in, err
	}
	return in, nil
}

func validateInput(in any) error {
	v := reflect.ValueOf(in)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	err := validate.Struct(v.Interface())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &Error{Code: CodeBadRequest, Message: "invalid input: " + err.Error(), Cause: err}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldPath(fe)+": "+describe(fe))
	}
	return &Error{Code: CodeBadRequest, Message: "invalid input: " + strings.Join(msgs, "; "), Cause: err}
}

// fieldPath drops the Go type name that leads every namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "min":
		switch fe.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map:
			return "must contain at least " + fe.Param() + " item(s)"
		case reflect.String:
			if fe.Param() == "1" {
				return "must not be empty"
			}
			return "must be at least " + fe.Param() + " characters"
		default:
			return "must be at least " + fe.Param()
		}
	}
	if msg, ok := customMessages[fe.Tag()]; ok {
		return msg
	}
	return "failed the " + fe.Tag() + " check"
}

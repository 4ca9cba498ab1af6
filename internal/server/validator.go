package server

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// requestValidator validates request parameter structs and translates each
// violated rule into a message keyed by the field's json name.
type requestValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func newRequestValidator() (*requestValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &requestValidator{
		validator:  validate,
		translator: trans,
	}, nil
}

// validate returns ("", true) for valid requests, or the messages of the
// violated rules joined with "; ".
func (v *requestValidator) validate(request any) (string, bool) {
	err := v.validator.Struct(request)
	if err == nil {
		return "", true
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error(), false
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Translate(v.translator))
	}
	return strings.Join(messages, "; "), false
}

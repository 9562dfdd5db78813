package session

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrijs2005/careadmin/internal/common"
	"github.com/dmitrijs2005/careadmin/internal/server/i18n"
	"github.com/go-playground/locales/de"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
)

// RegisterForm is the payload of the registration screen.
type RegisterForm struct {
	Name            string `form:"name"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword" validate:"eqfield=Password"`
}

// FormError carries the translated messages of a failed check.
type FormError struct {
	Messages []string
	err      error
}

func (e *FormError) Error() string {
	return fmt.Sprintf("%v: %s", common.ErrPasswordMismatch, strings.Join(e.Messages, "; "))
}

func (e *FormError) Unwrap() []error {
	return []error{common.ErrPasswordMismatch, e.err}
}

// Validator checks registration forms and translates the failures into the
// display language.
type Validator struct {
	validate *validator.Validate
	uni      *ut.UniversalTranslator
	catalog  *i18n.Catalog
}

// NewValidator builds a validator whose messages come from catalog.
func NewValidator(catalog *i18n.Catalog) (*Validator, error) {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		catalog:  catalog,
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	v.uni = ut.New(enLocale, enLocale, de.New())

	for _, lang := range []string{common.LanguageEnglish, common.LanguageGerman} {
		trans, found := v.uni.GetTranslator(lang)
		if !found {
			return nil, fmt.Errorf("no translator for %q", lang)
		}
		message := catalog.T(lang, "passwordsDoNotMatch")
		err := v.validate.RegisterTranslation("eqfield", trans,
			func(ut ut.Translator) error {
				return ut.Add("eqfield", message, true)
			},
			func(ut ut.Translator, fe validator.FieldError) string {
				t, _ := ut.T("eqfield", fe.Field())
				return t
			},
		)
		if err != nil {
			return nil, fmt.Errorf("register %s translation: %w", lang, err)
		}
	}

	return v, nil
}

// Check validates form. A failure is returned as *FormError.
func (v *Validator) Check(lang string, form RegisterForm) error {
	err := v.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate register form: %w", err)
	}

	trans, _ := v.uni.GetTranslator(v.catalog.Normalize(lang))
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fe.Translate(trans))
	}

	return &FormError{Messages: messages, err: verrs}
}

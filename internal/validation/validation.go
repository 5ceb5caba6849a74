// Package validation checks request DTOs and renders every violation as a
// localized message. Field paths use JSON names and slice indices, e.g.
// "answers[2].questionId".
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/pt_BR"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/university/internal/apperror"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
)

const (
	LocaleEnglish    = "en"
	LocalePortuguese = "pt_BR"
)

// message keys, one per violation code
const (
	keyNotNull         = "not_null"
	keyNotBlank        = "not_blank"
	keyGreaterThan     = "greater_than"
	keyGreaterOrEqual  = "greater_or_equal"
	keyMinItems        = "min_items"
	keyInvalid         = "invalid"
	tagNotBlank        = "notblank"
	defaultFallbackMsg = "{0} is invalid"
)

var tagKeys = map[string]string{
	"required":  keyNotNull,
	tagNotBlank: keyNotBlank,
	"gt":        keyGreaterThan,
	"gte":       keyGreaterOrEqual,
	"min":       keyMinItems,
}

var catalog = map[string]map[string]string{
	LocaleEnglish: {
		keyNotNull:        "{0} must not be null",
		keyNotBlank:       "{0} must not be blank",
		keyGreaterThan:    "{0} must be greater than {1}",
		keyGreaterOrEqual: "{0} must be greater than or equal to {1}",
		keyMinItems:       "{0} must contain at least {1} item(s)",
		keyInvalid:        defaultFallbackMsg,
	},
	LocalePortuguese: {
		keyNotNull:        "O campo {0} não deve ser nulo",
		keyNotBlank:       "O campo {0} não deve estar em branco",
		keyGreaterThan:    "O campo {0} deve ser maior que {1}",
		keyGreaterOrEqual: "O campo {0} deve ser maior ou igual a {1}",
		keyMinItems:       "O campo {0} deve conter pelo menos {1} item(ns)",
		keyInvalid:        "O campo {0} é inválido",
	},
}

type Validator struct {
	validate      *validator.Validate
	uni           *ut.UniversalTranslator
	matcher       language.Matcher
	locales       []string
	defaultLocale string
}

// New builds a Validator whose messages fall back to defaultLocale. An
// unsupported defaultLocale falls back to English.
func New(defaultLocale string) (*Validator, error) {
	if _, ok := catalog[defaultLocale]; !ok {
		log.Warn().Str("locale", defaultLocale).Msg("Unsupported default locale, using en")
		defaultLocale = LocaleEnglish
	}

	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation(tagNotBlank, notBlank); err != nil {
		return nil, err
	}

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, pt_BR.New())
	for locale, messages := range catalog {
		trans, found := uni.GetTranslator(locale)
		if !found {
			continue
		}
		for key, text := range messages {
			if err := trans.Add(key, text, true); err != nil {
				return nil, err
			}
		}
	}

	// The matcher falls back to its first tag, so the default goes first.
	locales := []string{defaultLocale}
	for locale := range catalog {
		if locale != defaultLocale {
			locales = append(locales, locale)
		}
	}
	tags := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		tags = append(tags, language.Make(strings.ReplaceAll(locale, "_", "-")))
	}

	return &Validator{
		validate:      v,
		uni:           uni,
		matcher:       language.NewMatcher(tags),
		locales:       locales,
		defaultLocale: defaultLocale,
	}, nil
}

// Locale picks the supported locale that best matches an Accept-Language
// header value.
func (v *Validator) Locale(acceptLanguage string) string {
	if strings.TrimSpace(acceptLanguage) == "" {
		return v.defaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return v.defaultLocale
	}
	_, idx, conf := v.matcher.Match(tags...)
	if conf == language.No {
		return v.defaultLocale
	}
	return v.locales[idx]
}

// Validate checks s and returns an apperror validation error carrying one
// message per violation, or nil.
func (v *Validator) Validate(s any, locale string) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	trans := v.translator(locale)
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, render(trans, fe))
	}
	return apperror.Validation(messages...)
}

func (v *Validator) translator(locale string) ut.Translator {
	if trans, found := v.uni.GetTranslator(locale); found {
		return trans
	}
	trans, _ := v.uni.GetTranslator(v.defaultLocale)
	return trans
}

func render(trans ut.Translator, fe validator.FieldError) string {
	key, ok := tagKeys[fe.Tag()]
	if !ok {
		key = keyInvalid
	}
	msg, err := trans.T(key, FieldPath(fe.Namespace()), fe.Param())
	if err != nil {
		log.Warn().Err(err).Str("key", key).Str("locale", trans.Locale()).Msg("Missing validation message")
		return FieldPath(fe.Namespace()) + " is invalid"
	}
	return msg
}

// FieldPath drops the root struct name from a validator namespace.
func FieldPath(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.String {
		return strings.TrimSpace(field.String()) != ""
	}
	return !field.IsZero()
}

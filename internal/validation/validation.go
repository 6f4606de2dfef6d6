// Package validation содержит правила для учётных данных и регистрирует их в
// валидаторе gin.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagEmail    = "basicemail"
	TagPassword = "strongpassword"

	MinPasswordLength = 8
	// bcrypt не принимает пароли длиннее 72 байт
	MaxPasswordBytes = 72
)

var (
	ErrPasswordTooShort = fmt.Errorf("password must be at least %d characters long", MinPasswordLength)
	ErrPasswordTooLong  = fmt.Errorf("password must be at most %d bytes long", MaxPasswordBytes)
	ErrPasswordNoUpper  = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower  = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit  = errors.New("password must contain at least one digit")
	ErrPasswordNoSymbol = errors.New("password must contain at least one symbol")
	errUnexpectedEngine = errors.New("unexpected validator engine")
	emailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	upperPattern        = regexp.MustCompile(`[A-Z]`)
	lowerPattern        = regexp.MustCompile(`[a-z]`)
	digitPattern        = regexp.MustCompile(`[0-9]`)
	symbolPattern       = regexp.MustCompile(`\W`)
)

// ValidEmail: только форма local@domain.tld, без проверки домена.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CheckPassword возвращает первое нарушенное правило или nil.
func CheckPassword(password string) error {
	switch {
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordBytes:
		return ErrPasswordTooLong
	case !upperPattern.MatchString(password):
		return ErrPasswordNoUpper
	case !lowerPattern.MatchString(password):
		return ErrPasswordNoLower
	case !digitPattern.MatchString(password):
		return ErrPasswordNoDigit
	case !symbolPattern.MatchString(password):
		return ErrPasswordNoSymbol
	}
	return nil
}

// Register добавляет теги в v; имена полей в ошибках берутся из json-тегов.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation(TagEmail, func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}); err != nil {
		return err
	}
	return v.RegisterValidation(TagPassword, func(fl validator.FieldLevel) bool {
		return CheckPassword(fl.Field().String()) == nil
	})
}

// RegisterGin регистрирует теги в движке, которым пользуется c.ShouldBind*.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedEngine
	}
	return Register(v)
}

// Message сводит ошибку биндинга к одной строке для ответа 400.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case TagEmail:
		return fe.Field() + " must be a valid email address"
	case TagPassword:
		if s, ok := fe.Value().(string); ok {
			if perr := CheckPassword(s); perr != nil {
				return perr.Error()
			}
		}
	}
	return fe.Field() + " is invalid"
}

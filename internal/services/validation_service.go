package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/homeveda/portal-client/internal/constants"
	"github.com/homeveda/portal-client/internal/dtos"
	"github.com/homeveda/portal-client/internal/utils"
)

const minPasswordLength = 6

var (
	contactPattern = regexp.MustCompile(`^\+?[0-9\- ]{6,20}$`)
	digitsPattern  = regexp.MustCompile(`^[0-9]+$`)
)

// ValidationService checks form drafts before any network call is made.
type ValidationService interface {
	// Validate returns nil or the first violated rule as *utils.ValidationError.
	Validate(draft any) error
}

type validationService struct {
	validate *validator.Validate
}

func NewValidationService() ValidationService {
	v := validator.New()

	mustRegister(v, "contact", func(fl validator.FieldLevel) bool {
		return contactPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	mustRegister(v, "digits", func(fl validator.FieldLevel) bool {
		return digitsPattern.MatchString(fl.Field().String())
	})

	v.RegisterStructValidation(catalogMediaRule, dtos.CatalogDraft{})
	v.RegisterStructValidation(resetPasswordRule, dtos.ResetPasswordDraft{})
	v.RegisterStructValidation(designItemRule, dtos.DesignItemDraft{})

	return &validationService{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		utils.Logger.WithError(err).Fatalf("Failed to register %s validator", tag)
	}
}

func (s *validationService) Validate(draft any) error {
	err := s.validate.Struct(draft)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	first := verrs[0]
	return &utils.ValidationError{
		Field:   first.Field(),
		Tag:     first.Tag(),
		Message: messageFor(reflect.TypeOf(draft), first),
	}
}

// ------------------------------------------------------------------
// struct-level rules
// ------------------------------------------------------------------

func catalogMediaRule(sl validator.StructLevel) {
	d := sl.Current().Interface().(dtos.CatalogDraft)
	switch d.Type {
	case constants.ItemTypePremium:
		if !d.HasImage() || !d.HasVideo() {
			sl.ReportError(d.Image, "Image", "Image", "premium_media", "")
		}
	case constants.ItemTypeNormal:
		if !d.HasImage() {
			sl.ReportError(d.Image, "Image", "Image", "normal_media", "")
		}
	}
}

func resetPasswordRule(sl validator.StructLevel) {
	d := sl.Current().Interface().(dtos.ResetPasswordDraft)
	if d.NewPassword != "" && len(d.NewPassword) < minPasswordLength {
		sl.ReportError(d.NewPassword, "NewPassword", "NewPassword", "min_length", fmt.Sprint(minPasswordLength))
	}
}

func designItemRule(sl validator.StructLevel) {
	d := sl.Current().Interface().(dtos.DesignItemDraft)
	if d.Image == nil && d.Design == nil {
		sl.ReportError(d.Image, "Image", "Image", "design_file", "")
	}
}

// ------------------------------------------------------------------
// messages
// ------------------------------------------------------------------

// messageFor reads msg_<tag> or msg from the failing field's struct tags and
// falls back to a generic sentence.
func messageFor(root reflect.Type, fe validator.FieldError) string {
	if field, ok := lookupField(root, fe.StructNamespace()); ok {
		if msg := field.Tag.Get("msg_" + fe.Tag()); msg != "" {
			return msg
		}
		if msg := field.Tag.Get("msg"); msg != "" {
			return msg
		}
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field '%s' is required", fe.Field())
	case "email":
		return fmt.Sprintf("Field '%s' must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s in length", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("Field '%s' must not exceed %s in length", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fe.Field(), fe.Tag())
	}
}

// lookupField walks a namespace such as "DesignBatch.Items[0].Name".
func lookupField(root reflect.Type, namespace string) (reflect.StructField, bool) {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.StructField{}, false
	}
	t := root
	var field reflect.StructField
	for _, part := range parts[1:] {
		if i := strings.IndexByte(part, '['); i >= 0 {
			part = part[:i]
		}
		for t.Kind() == reflect.Ptr || t.Kind() == reflect.Slice {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return reflect.StructField{}, false
		}
		f, ok := t.FieldByName(part)
		if !ok {
			return reflect.StructField{}, false
		}
		field = f
		t = f.Type
	}
	return field, true
}

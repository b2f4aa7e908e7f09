package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/bentogrid/internal/grid"
	bentoerrors "github.com/alexisbeaulieu97/bentogrid/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("hex_color", func(fl validator.FieldLevel) bool {
			return grid.IsHexColor(fl.Field().String())
		})
		registerEnum(v, "corner", grid.CornerType.Valid)
		registerEnum(v, "aspect", grid.AspectRatio.Valid)
		registerEnum(v, "border", grid.BorderStyle.Valid)
		registerEnum(v, "border_color", grid.BorderColor.Valid)
		registerEnum(v, "text_size", grid.TextSize.Valid)
		registerEnum(v, "text_weight", grid.TextWeight.Valid)
		registerEnum(v, "text_align", grid.TextAlign.Valid)
		registerEnum(v, "text_transform", grid.TextTransform.Valid)

		validateInst = v
	})

	return validateInst
}

func registerEnum[T ~string](v *validator.Validate, tag string, valid func(T) bool) {
	_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return valid(T(fl.Field().String()))
	})
}

// ValidateDocument performs schema and cross-field validation on a layout document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return bentoerrors.NewValidationError("layout", "document is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[int]int, len(doc.Items))
	for i, item := range doc.Items {
		if prev, ok := seen[item.Index]; ok {
			return bentoerrors.NewValidationError(
				fieldForItem(i, "index"),
				fmt.Sprintf("index %d already used by items[%d]", item.Index, prev),
				nil,
			)
		}
		seen[item.Index] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := yamlFieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if value := fmt.Sprint(fe.Value()); value != "" {
			msg = fmt.Sprintf("%s (got %q)", msg, value)
		}
		return bentoerrors.NewValidationError(field, msg, err)
	}

	return bentoerrors.NewValidationError("layout", err.Error(), err)
}

// yamlFieldName drops the root type from the namespace, leaving the path as
// it is written in the YAML document, e.g. "items[2].text_color".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func fieldForItem(index int, field string) string {
	return fmt.Sprintf("items[%d].%s", index, field)
}

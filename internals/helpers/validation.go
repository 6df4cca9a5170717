// file: internals/helpers/validation.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ValidationErrorsToMap mengubah validator.ValidationErrors menjadi
// map field → daftar pesan (dipakai JsonValidationError).
func ValidationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " minimal " + fe.Param() + "."
		case "max":
			msg = field + " maksimal " + fe.Param() + "."
		case "oneof":
			msg = field + " harus salah satu dari: " + fe.Param() + "."
		default:
			msg = field + " tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}

// ValidationJSON shortcut: validate error → 400 dengan detail per-field.
func ValidationJSON(c *fiber.Ctx, err error) error {
	return JsonValidationError(c, "Validasi gagal", ValidationErrorsToMap(err))
}

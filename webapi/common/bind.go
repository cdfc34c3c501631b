package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body and validates it using
// go-playground/validator. Validation failures are field-scoped: the
// response lists each offending field so the form can block submission
// locally. On failure the problem response is written here and a nil
// struct is returned; the caller returns the accompanying error as-is,
// which is non-nil only if writing the response itself failed.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", nil, err.Error(), fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		var fields map[string]string
		if verrs, ok := err.(validator.ValidationErrors); ok {
			fields = make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
		}
		pd := ProblemDetails{
			Type:     "about:blank",
			Title:    "Validation failed",
			Status:   fiber.StatusBadRequest,
			Errors:   fields,
			Instance: c.OriginalURL(),
		}
		c.Set(fiber.HeaderContentType, "application/problem+json")
		return nil, c.Status(fiber.StatusBadRequest).JSON(pd)
	}
	return &input, nil
}

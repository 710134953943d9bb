package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/adoptafacil/pkg/util/errorutil"
)

// registered is the acknowledgment body of every save endpoint.
var registered = fiber.Map{"data": fiber.Map{"status": "registered"}}

func data(c *fiber.Ctx, payload any) error {
	return c.JSON(fiber.Map{"data": payload})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperrors.NewInvalidPayload("invalid payload", decodeDetails(err))
	}
	return nil
}

// decodeDetails names what the decoder rejected so clients can fix the field.
func decodeDetails(err error) map[string]any {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return map[string]any{
			"field":    typeErr.Field,
			"expected": typeErr.Type.String(),
			"received": typeErr.Value,
		}
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return map[string]any{"offset": syntaxErr.Offset, "reason": syntaxErr.Error()}
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return map[string]any{"reason": fiberErr.Message}
	}
	return map[string]any{"reason": err.Error()}
}

func idParam(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NewInvalidValue("id must be a positive integer", map[string]any{"field": "id", "value": raw})
	}
	return id, nil
}

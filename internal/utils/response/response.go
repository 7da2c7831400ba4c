package response

import (
	apperrors "storeadmin/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

// WithStatus writes the success envelope under a non-200 status.
func WithStatus(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// FromError maps a domain error to its status and code. Anything else is logged
// and reported as a 500 without leaking the cause.
func FromError(c *fiber.Ctx, err error) error {
	if de, ok := apperrors.As(err); ok {
		return c.Status(de.Status).JSON(fiber.Map{
			"error": err.Error(),
			"code":  de.Code,
		})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("[http] unhandled error")
	return ServerError(c, "internal server error")
}

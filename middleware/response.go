package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"coursehub/errs"
)

// JsonResponse writes data as the raw response body
func JsonResponse(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(data)
}

// MessageResponse writes a body that only carries a message
func MessageResponse(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"message": message})
}

// ErrorResponse renders err as {message, code, errors?} with the status of its kind
func ErrorResponse(c *fiber.Ctx, err error) error {
	kind := errs.KindOf(err)
	if kind == errs.KindInternal {
		zap.L().Error("request failed",
			zap.String("requestId", RequestIDOf(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	body := fiber.Map{
		"message": errs.MessageOf(err),
		"code":    kind,
	}
	if details := errs.DetailsOf(err); len(details) > 0 {
		body["errors"] = details
	}
	return c.Status(StatusOf(kind)).JSON(body)
}

// ValidationErrorResponse reports per-field validation failures
func ValidationErrorResponse(c *fiber.Ctx, fieldErrors map[string]string) error {
	return ErrorResponse(c, errs.Invalid("validate", "Validation error", fieldErrors))
}

// StatusOf maps an error kind to its HTTP status
func StatusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case errs.KindNotFound:
		return fiber.StatusNotFound
	case errs.KindConflict, errs.KindInvalidArgument:
		return fiber.StatusBadRequest
	case errs.KindPaymentRequired:
		return fiber.StatusPaymentRequired
	case errs.KindForbidden:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders errors that escape handlers, including fiber's own
// (unknown route, oversized body), in the same shape as ErrorResponse.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := errs.KindInternal
		switch {
		case fe.Code == fiber.StatusNotFound:
			code = errs.KindNotFound
		case fe.Code == fiber.StatusUnauthorized:
			code = errs.KindUnauthenticated
		case fe.Code == fiber.StatusForbidden:
			code = errs.KindForbidden
		case fe.Code < fiber.StatusInternalServerError:
			code = errs.KindInvalidArgument
		}
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message, "code": code})
	}
	return ErrorResponse(c, err)
}

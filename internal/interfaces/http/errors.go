package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/feria-pos/internal/application/dto"
	appstate "github.com/jhoicas/feria-pos/internal/application/state"
	"github.com/jhoicas/feria-pos/internal/domain"
)

// statusByCode estado HTTP de cada código de rechazo.
var statusByCode = map[string]int{
	"PERMISSION_DENIED":        fiber.StatusForbidden,
	"UNAUTHORIZED":             fiber.StatusUnauthorized,
	"NOT_FOUND":                fiber.StatusNotFound,
	"INSUFFICIENT_STOCK":       fiber.StatusConflict,
	"DUPLICATE":                fiber.StatusConflict,
	"INVALID_STATE_TRANSITION": fiber.StatusConflict,
	"VALIDATION":               fiber.StatusBadRequest,
	"INVALID_TRANSFER_ROUTE":   fiber.StatusBadRequest,
	"TOTAL_MISMATCH":           fiber.StatusBadRequest,
}

// writeError traduce un error de dominio a la respuesta HTTP.
func writeError(c *fiber.Ctx, err error) error {
	if errors.Is(err, appstate.ErrNotLoaded) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "NOT_LOADED", Message: err.Error()})
	}
	code := domain.Code(err)
	status, ok := statusByCode[code]
	if !ok {
		status = fiber.StatusInternalServerError
	}
	resp := dto.ErrorResponse{Code: code, Message: err.Error()}
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		resp.Details = verr.Fields
	}
	return c.Status(status).JSON(resp)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

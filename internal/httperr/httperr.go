package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var messages = map[string]string{
	"missing_stylist":        "Missing stylist. Use the link from your stylist.",
	"missing_required":       "Please fill name, phone, and at least one service.",
	"missing_services":       "Select at least one service.",
	"invalid_phone":          "Phone number is invalid.",
	"invalid_date_or_time":   "Preferred date or time is invalid.",
	"invalid_price":          "Price must be positive.",
	"invalid_request":        "Invalid request.",
	"appointment_not_found":  "Appointment not found.",
	"service_not_found":      "Service not found.",
	"client_not_found":       "Client not found.",
	"missing_name":           "Name is required.",
	"invalid_amount":         "Amount must not be negative.",
	"invalid_state":          "This appointment can no longer be changed this way.",
	"concurrent_update":      "This appointment was changed by someone else. Reload and try again.",
	"no_payment_link":        "This service has no payment link set.",
	"invalid_payment_link":   "This service has an invalid payment link.",
	"link_provider_disabled": "Payment link provisioning is not configured.",
	"request_in_progress":    "This request is already being processed.",
}

func messageFor(code, fallback string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return fallback
}

// FromError traduz o erro de um use case para a resposta HTTP.
func FromError(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch be.Kind {
	case KindValidation:
		BadRequest(c, be.Code, messageFor(be.Code, "Invalid input."))
	case KindNotFound:
		NotFound(c, be.Code, messageFor(be.Code, "Not found."))
	case KindInvalidTransition:
		Conflict(c, be.Code, messageFor(be.Code, "Invalid state."))
	case KindPolicy:
		Unprocessable(c, be.Code, messageFor(be.Code, "Action not allowed."))
	case KindStore:
		Unavailable(c, be.Code, "Something went wrong. Please try again.")
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}

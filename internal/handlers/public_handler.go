package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/httpresp"
	"github.com/BruksfildServices01/viki/internal/usecase/appointment"
	"github.com/BruksfildServices01/viki/internal/usecase/catalog"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler atende o formulário de intake (sem login).
type PublicHandler struct {
	listServices *catalog.ListServicesByStylist
	submitIntake *appointment.SubmitIntake
}

func NewPublicHandler(
	listServices *catalog.ListServicesByStylist,
	submitIntake *appointment.SubmitIntake,
) *PublicHandler {
	return &PublicHandler{
		listServices: listServices,
		submitIntake: submitIntake,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type IntakeRequest struct {
	FullName     string   `json:"full_name"`
	Phone        string   `json:"phone"`
	ServiceIDs   []string `json:"service_ids"`
	Date         string   `json:"date"` // YYYY-MM-DD
	Time         string   `json:"time"` // HH:MM
	Notes        string   `json:"notes"`
	RequestToken string   `json:"request_token"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServices.Execute(c.Request.Context(), c.Param("stylistId"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// INTAKE
////////////////////////////////////////////////////////

func (h *PublicHandler) SubmitIntake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	token := req.RequestToken
	if token == "" {
		token = c.GetHeader("Idempotency-Key")
	}

	res, err := h.submitIntake.Execute(c.Request.Context(), appointment.SubmitIntakeInput{
		StylistID:    c.Param("stylistId"),
		FullName:     req.FullName,
		Phone:        req.Phone,
		ServiceIDs:   req.ServiceIDs,
		Date:         req.Date,
		Time:         req.Time,
		Notes:        req.Notes,
		RequestToken: token,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if res.Replayed {
		httpresp.OK(c, res)
		return
	}
	httpresp.Created(c, res)
}

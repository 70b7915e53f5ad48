package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/httpresp"
	"github.com/BruksfildServices01/viki/internal/middleware"
	"github.com/BruksfildServices01/viki/internal/usecase/appointment"
	"github.com/BruksfildServices01/viki/internal/usecase/checkout"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	listPending *appointment.ListPendingRequests
	confirm     *appointment.ConfirmAppointment
	decline     *appointment.DeclineAppointment
	reschedule  *appointment.RescheduleAppointment
	markPaid    *checkout.MarkPaidAndClose
}

func NewAppointmentHandler(
	listPending *appointment.ListPendingRequests,
	confirm *appointment.ConfirmAppointment,
	decline *appointment.DeclineAppointment,
	reschedule *appointment.RescheduleAppointment,
	markPaid *checkout.MarkPaidAndClose,
) *AppointmentHandler {
	return &AppointmentHandler{
		listPending: listPending,
		confirm:     confirm,
		decline:     decline,
		reschedule:  reschedule,
		markPaid:    markPaid,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:MM
}

// ======================================================
// LIST (fila de pedidos)
// ======================================================

func (h *AppointmentHandler) ListRequests(c *gin.Context) {
	items, err := h.listPending.Execute(c.Request.Context(), middleware.StylistID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, items)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	ap, err := h.confirm.Execute(c.Request.Context(), middleware.StylistID(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Decline(c *gin.Context) {
	ap, err := h.decline.Execute(c.Request.Context(), middleware.StylistID(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	ap, err := h.reschedule.ExecuteAt(
		c.Request.Context(),
		middleware.StylistID(c),
		c.Param("id"),
		req.Date,
		req.Time,
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

// MarkPaid devolve redirect_to para a tela seguir para o financeiro.
func (h *AppointmentHandler) MarkPaid(c *gin.Context) {
	res, err := h.markPaid.Execute(c.Request.Context(), middleware.StylistID(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, res)
}

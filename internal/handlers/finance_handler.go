package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/httpresp"
	"github.com/BruksfildServices01/viki/internal/middleware"
	"github.com/BruksfildServices01/viki/internal/usecase/finance"
)

type FinanceHandler struct {
	ledger  *finance.BuildLedger
	export  *finance.ExportLedger
	payment *finance.RecordPayment
}

func NewFinanceHandler(
	ledger *finance.BuildLedger,
	export *finance.ExportLedger,
	payment *finance.RecordPayment,
) *FinanceHandler {
	return &FinanceHandler{
		ledger:  ledger,
		export:  export,
		payment: payment,
	}
}

type RecordPaymentRequest struct {
	AppointmentID *string `json:"appointment_id"`
	AmountCents   *int64  `json:"amount_cents"`
	Method        *string `json:"method"`
}

func (h *FinanceHandler) Ledger(c *gin.Context) {
	ledger, err := h.ledger.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ledger)
}

func (h *FinanceHandler) Export(c *gin.Context) {
	file, err := h.export.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.CSV(c, file.Filename, file.Body)
}

func (h *FinanceHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	p, err := h.payment.Execute(c.Request.Context(), middleware.StylistID(c), finance.RecordPaymentInput{
		AppointmentID: req.AppointmentID,
		AmountCents:   req.AmountCents,
		Method:        req.Method,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, p)
}

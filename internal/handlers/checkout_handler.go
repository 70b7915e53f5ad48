package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/viki/internal/dto"
	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/httpresp"
	"github.com/BruksfildServices01/viki/internal/middleware"
	"github.com/BruksfildServices01/viki/internal/usecase/checkout"
)

type CheckoutHandler struct {
	get        *checkout.GetCheckout
	paymentURL *checkout.BuildPaymentURL
}

func NewCheckoutHandler(
	get *checkout.GetCheckout,
	paymentURL *checkout.BuildPaymentURL,
) *CheckoutHandler {
	return &CheckoutHandler{
		get:        get,
		paymentURL: paymentURL,
	}
}

// SelectionRequest carrega os toggles da tela, na ordem em que ocorreram.
type SelectionRequest struct {
	Selected []string `json:"selected"`
}

func (h *CheckoutHandler) Get(c *gin.Context) {
	h.respond(c, c.QueryArray("selected"))
}

func (h *CheckoutHandler) Total(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}
	h.respond(c, req.Selected)
}

func (h *CheckoutHandler) PaymentURL(c *gin.Context) {
	var req SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	url, err := h.paymentURL.Execute(
		c.Request.Context(),
		middleware.StylistID(c),
		c.Param("id"),
		req.Selected,
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"url": url})
}

func (h *CheckoutHandler) respond(c *gin.Context, toggles []string) {
	co, err := h.get.Execute(c.Request.Context(), middleware.StylistID(c), c.Param("id"), toggles)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	selected := co.Selection.Services()
	ids := make([]string, 0, len(selected))
	for _, s := range selected {
		ids = append(ids, s.ID)
	}

	httpresp.OK(c, dto.CheckoutDTO{
		Appointment: co.Appointment,
		Services:    co.Services,
		Selected:    ids,
		Total:       co.Selection.Total().StringFixed(2),
	})
}

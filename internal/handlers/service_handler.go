package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/httpresp"
	"github.com/BruksfildServices01/viki/internal/middleware"
	"github.com/BruksfildServices01/viki/internal/usecase/catalog"
)

type ServiceHandler struct {
	list      *catalog.ListServicesByStylist
	create    *catalog.CreateService
	update    *catalog.UpdateService
	provision *catalog.ProvisionPaymentLink
}

func NewServiceHandler(
	list *catalog.ListServicesByStylist,
	create *catalog.CreateService,
	update *catalog.UpdateService,
	provision *catalog.ProvisionPaymentLink,
) *ServiceHandler {
	return &ServiceHandler{
		list:      list,
		create:    create,
		update:    update,
		provision: provision,
	}
}

// --------- Requests ---------

// ServiceRequest serve para criar e atualizar; campos ausentes não mudam.
type ServiceRequest struct {
	Name           *string          `json:"name,omitempty"`
	Price          *decimal.Decimal `json:"price,omitempty"`
	PaymentLinkURL *string          `json:"payment_link_url,omitempty"`
}

func (r ServiceRequest) input() catalog.ServiceInput {
	return catalog.ServiceInput{
		Name:           r.Name,
		Price:          r.Price,
		PaymentLinkURL: r.PaymentLinkURL,
	}
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.list.Execute(c.Request.Context(), middleware.StylistID(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), middleware.StylistID(c), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request.")
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), middleware.StylistID(c), c.Param("id"), req.input())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) ProvisionPaymentLink(c *gin.Context) {
	svc, err := h.provision.Execute(c.Request.Context(), middleware.StylistID(c), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, svc)
}

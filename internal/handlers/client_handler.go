package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/viki/internal/httperr"
	"github.com/BruksfildServices01/viki/internal/httpresp"
	"github.com/BruksfildServices01/viki/internal/usecase/client"
)

type ClientHandler struct {
	list *client.ListClients
}

func NewClientHandler(list *client.ListClients) *ClientHandler {
	return &ClientHandler{list: list}
}

// List aceita ?query= (nome ou telefone).
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, clients)
}

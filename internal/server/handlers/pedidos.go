package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/pedidos"
)

// PedidoHandler adapts the order service to HTTP.
type PedidoHandler struct {
	svc    *pedidos.Service
	logger *zap.Logger
}

// NewPedidoHandler constructs the order handler adapter.
func NewPedidoHandler(svc *pedidos.Service, logger *zap.Logger) *PedidoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PedidoHandler{svc: svc, logger: logger}
}

// List serves all orders enriched with total, priority and display names.
func (h *PedidoHandler) List(c *gin.Context) {
	vistas, err := h.svc.Listar(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed listing pedidos", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar los pedidos"})
		return
	}

	c.JSON(http.StatusOK, vistas)
}

// Get serves one enriched order.
func (h *PedidoHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	vista, err := h.svc.Obtener(c.Request.Context(), id, time.Now())
	if err != nil {
		h.logger.Error("failed loading pedido", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el pedido"})
		return
	}

	c.JSON(http.StatusOK, vista)
}

// Create composes and persists a new order from the submitted draft.
func (h *PedidoHandler) Create(c *gin.Context) {
	var draft pedidos.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.logger.Warn("invalid pedido payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dto, err := h.svc.Crear(c.Request.Context(), draft, time.Now())
	if err != nil {
		h.respondError(c, err, "Error al guardar el pedido")
		return
	}

	c.JSON(http.StatusCreated, dto)
}

// Update recomposes an existing order from the submitted draft.
func (h *PedidoHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var draft pedidos.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		h.logger.Warn("invalid pedido payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dto, err := h.svc.Actualizar(c.Request.Context(), id, draft)
	if err != nil {
		h.respondError(c, err, "Error al guardar el pedido")
		return
	}

	c.JSON(http.StatusOK, dto)
}

// Delete removes an order.
func (h *PedidoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.logger.Error("failed deleting pedido", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al eliminar el pedido"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateEstado changes only the order state. This is the one route where the
// transitional Despachado state is accepted.
func (h *PedidoHandler) UpdateEstado(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Estado string `json:"estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid estado payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pedido, err := h.svc.ActualizarEstado(c.Request.Context(), id, req.Estado)
	if err != nil {
		h.respondError(c, err, "Error al actualizar el estado")
		return
	}

	c.JSON(http.StatusOK, pedido.DTO())
}

func (h *PedidoHandler) respondError(c *gin.Context, err error, fallback string) {
	var ve *pedidos.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	h.logger.Error("pedido operation failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
}

// pathID parses the :id route parameter, responding 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

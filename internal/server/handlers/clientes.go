package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/clientes"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/validation"
)

// ClienteHandler adapts the client service to HTTP.
type ClienteHandler struct {
	svc    *clientes.Service
	logger *zap.Logger
}

// NewClienteHandler constructs the client handler adapter.
func NewClienteHandler(svc *clientes.Service, logger *zap.Logger) *ClienteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClienteHandler{svc: svc, logger: logger}
}

// clienteForm carries the client draft over the wire. Tag rules cover the
// per-field checks; the branch dedup rule lives in the service.
type clienteForm struct {
	NombreCompleto string            `json:"nombreCompleto" validate:"required"`
	Email          string            `json:"email" validate:"omitempty,email"`
	Telefono       string            `json:"telefono"`
	Direccion      string            `json:"direccion"`
	Notas          string            `json:"notas"`
	Sucursales     []models.Sucursal `json:"sucursales"`
}

func (f clienteForm) draft() clientes.Draft {
	return clientes.Draft{
		NombreCompleto: f.NombreCompleto,
		Email:          f.Email,
		Telefono:       f.Telefono,
		Direccion:      f.Direccion,
		Notas:          f.Notas,
		Sucursales:     f.Sucursales,
	}
}

// List serves all clients.
func (h *ClienteHandler) List(c *gin.Context) {
	listado, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing clientes", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar los clientes"})
		return
	}

	c.JSON(http.StatusOK, listado)
}

// Get serves one client.
func (h *ClienteHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	cliente, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed loading cliente", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el cliente"})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// Create validates and creates a client.
func (h *ClienteHandler) Create(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	cliente, err := h.svc.Crear(c.Request.Context(), form.draft())
	if err != nil {
		h.respondError(c, err, "Error al guardar el cliente")
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

// Update validates and updates a client.
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	cliente, err := h.svc.Actualizar(c.Request.Context(), id, form.draft())
	if err != nil {
		h.respondError(c, err, "Error al guardar el cliente")
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// Delete removes a client.
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.logger.Error("failed deleting cliente", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al eliminar el cliente"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateNotas replaces only the client's free-text notes.
func (h *ClienteHandler) UpdateNotas(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req struct {
		Notas string `json:"notas"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid notas payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cliente, err := h.svc.ActualizarNotas(c.Request.Context(), id, req.Notas)
	if err != nil {
		h.respondError(c, err, "Error al guardar las notas")
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) bindForm(c *gin.Context) (clienteForm, bool) {
	var form clienteForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid cliente payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return form, false
	}

	if err := validation.Validate(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos", "campos": validation.Errors(err)})
		return form, false
	}

	return form, true
}

func (h *ClienteHandler) respondError(c *gin.Context, err error, fallback string) {
	var ve *clientes.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	h.logger.Error("cliente operation failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
}

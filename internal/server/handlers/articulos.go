package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/articulos"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/validation"
)

// ArticuloHandler adapts the catalog service to HTTP.
type ArticuloHandler struct {
	svc    *articulos.Service
	logger *zap.Logger
}

// NewArticuloHandler constructs the catalog handler adapter.
func NewArticuloHandler(svc *articulos.Service, logger *zap.Logger) *ArticuloHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArticuloHandler{svc: svc, logger: logger}
}

type articuloForm struct {
	Nombre    string  `json:"nombre" validate:"required"`
	Categoria string  `json:"categoria" validate:"required"`
	Precio    float64 `json:"precio" validate:"gte=0"`
}

// List serves the full catalog.
func (h *ArticuloHandler) List(c *gin.Context) {
	listado, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		h.logger.Error("failed listing articulos", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar los artículos"})
		return
	}

	c.JSON(http.StatusOK, listado)
}

// Get serves one product.
func (h *ArticuloHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	articulo, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed loading articulo", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al cargar el artículo"})
		return
	}

	c.JSON(http.StatusOK, articulo)
}

// Create validates and creates a product.
func (h *ArticuloHandler) Create(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	articulo, err := h.svc.Crear(c.Request.Context(), models.ArticuloDTO(form))
	if err != nil {
		h.respondError(c, err, "Error al guardar el artículo")
		return
	}

	c.JSON(http.StatusCreated, articulo)
}

// Update validates and updates a product.
func (h *ArticuloHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	articulo, err := h.svc.Actualizar(c.Request.Context(), id, models.ArticuloDTO(form))
	if err != nil {
		h.respondError(c, err, "Error al guardar el artículo")
		return
	}

	c.JSON(http.StatusOK, articulo)
}

// Delete removes a product.
func (h *ArticuloHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		h.logger.Error("failed deleting articulo", zap.Int64("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al eliminar el artículo"})
		return
	}

	c.Status(http.StatusNoContent)
}

// Categorias serves the fixed category set so the form can offer it.
func (h *ArticuloHandler) Categorias(c *gin.Context) {
	c.JSON(http.StatusOK, models.Categorias)
}

func (h *ArticuloHandler) bindForm(c *gin.Context) (articuloForm, bool) {
	var form articuloForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid articulo payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return form, false
	}

	if err := validation.Validate(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "datos inválidos", "campos": validation.Errors(err)})
		return form, false
	}

	return form, true
}

func (h *ArticuloHandler) respondError(c *gin.Context, err error, fallback string) {
	var ve *articulos.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		return
	}

	h.logger.Error("articulo operation failed", zap.Error(err))
	c.JSON(http.StatusBadGateway, gin.H{"error": fallback})
}

package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/reporting"
)

// ReporteHandler exposes the priority report on demand, alongside the
// scheduled run.
type ReporteHandler struct {
	svc    *reporting.Service
	logger *zap.Logger
}

// NewReporteHandler constructs the report handler adapter.
func NewReporteHandler(svc *reporting.Service, logger *zap.Logger) *ReporteHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReporteHandler{svc: svc, logger: logger}
}

// Prioridad computes the current priority snapshot without archiving it.
func (h *ReporteHandler) Prioridad(c *gin.Context) {
	reporte, err := h.svc.GenerarReportePrioridad(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed generating priority report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al generar el reporte"})
		return
	}

	c.JSON(http.StatusOK, reporte)
}

// ArchivarPrioridad computes the snapshot and stores it in the archive.
func (h *ReporteHandler) ArchivarPrioridad(c *gin.Context) {
	reporte, err := h.svc.GenerarYArchivar(c.Request.Context(), time.Now())
	if err != nil {
		h.logger.Error("failed archiving priority report", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error al archivar el reporte"})
		return
	}

	c.JSON(http.StatusCreated, reporte)
}

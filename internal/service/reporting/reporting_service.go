package reporting

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/mongodb"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/remote"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/service/pedidos"
)

// Service aggregates open orders into priority snapshots.
type Service struct {
	pedidos remote.PedidoRepository
	archivo mongodb.Repository
	logger  *zap.Logger
}

// NewService wires a new reporting service instance.
func NewService(pedidosRepo remote.PedidoRepository, archivo mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{pedidos: pedidosRepo, archivo: archivo, logger: logger}
}

// GenerarReportePrioridad classifies every open order by age and returns the
// per-tier counts and money totals. Completed and cancelled orders are left
// out: they no longer compete for attention.
func (s *Service) GenerarReportePrioridad(ctx context.Context, now time.Time) (models.ReportePrioridad, error) {
	listado, err := s.pedidos.Listar(ctx)
	if err != nil {
		return models.ReportePrioridad{}, fmt.Errorf("load pedidos: %w", err)
	}

	reporte := models.ReportePrioridad{
		Fecha:     now,
		CreatedAt: time.Now(),
	}

	for _, pedido := range listado {
		if pedido.Estado == models.EstadoCompletado || pedido.Estado == models.EstadoCancelado {
			continue
		}

		total := pedidos.Total(pedido.Items)
		reporte.TotalPedidos++
		reporte.MontoTotal += total

		switch pedidos.PrioridadFecha(pedido.FechaPedido, now) {
		case models.PrioridadAlta:
			reporte.PedidosAlta++
			reporte.MontoAlta += total
		case models.PrioridadMedia:
			reporte.PedidosMedia++
			reporte.MontoMedia += total
		default:
			reporte.PedidosBaja++
			reporte.MontoBaja += total
		}
	}

	return reporte, nil
}

// GenerarYArchivar generates the snapshot and stores it in the archive.
func (s *Service) GenerarYArchivar(ctx context.Context, now time.Time) (models.ReportePrioridad, error) {
	reporte, err := s.GenerarReportePrioridad(ctx, now)
	if err != nil {
		return models.ReportePrioridad{}, err
	}

	if err := s.archivo.GuardarReportePrioridad(ctx, reporte); err != nil {
		return models.ReportePrioridad{}, fmt.Errorf("archive priority report: %w", err)
	}

	s.logger.Info("priority report archived",
		zap.Int("total", reporte.TotalPedidos),
		zap.Int("alta", reporte.PedidosAlta),
		zap.Int("media", reporte.PedidosMedia),
		zap.Int("baja", reporte.PedidosBaja))

	return reporte, nil
}

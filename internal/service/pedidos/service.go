package pedidos

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/remote"
)

// Service exposes the order operations behind the pedidos tab: enriched
// listings plus composition-backed writes.
type Service struct {
	pedidos   remote.PedidoRepository
	clientes  remote.ClienteRepository
	articulos remote.ArticuloRepository
	logger    *zap.Logger
}

// NewService wires a new order service instance.
func NewService(pedidos remote.PedidoRepository, clientes remote.ClienteRepository, articulos remote.ArticuloRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{pedidos: pedidos, clientes: clientes, articulos: articulos, logger: logger}
}

// Listar returns all orders enriched with totals, priority and display names.
func (s *Service) Listar(ctx context.Context, now time.Time) ([]PedidoVista, error) {
	pedidos, err := s.pedidos.Listar(ctx)
	if err != nil {
		return nil, err
	}

	clientes, articulos, err := s.catalogos(ctx)
	if err != nil {
		return nil, err
	}

	vistas := make([]PedidoVista, 0, len(pedidos))
	for _, pedido := range pedidos {
		vistas = append(vistas, buildVista(pedido, clientes, articulos, now))
	}
	return vistas, nil
}

// Obtener returns one enriched order.
func (s *Service) Obtener(ctx context.Context, id int64, now time.Time) (*PedidoVista, error) {
	pedido, err := s.pedidos.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	clientes, articulos, err := s.catalogos(ctx)
	if err != nil {
		return nil, err
	}

	vista := buildVista(*pedido, clientes, articulos, now)
	return &vista, nil
}

// Crear runs a create-mode composition over the submitted draft and persists
// the normalized payload upstream.
func (s *Service) Crear(ctx context.Context, draft Draft, now time.Time) (*models.PedidoDTO, error) {
	clientes, articulos, err := s.referencias(ctx)
	if err != nil {
		return nil, err
	}

	composer := NewComposer(clientes, articulos, now, func(ctx context.Context, dto models.PedidoDTO) error {
		_, err := s.pedidos.Crear(ctx, dto)
		return err
	})

	if err := aplicarDraft(composer, draft, false); err != nil {
		return nil, err
	}

	return composer.Submit(ctx)
}

// Actualizar runs an edit-mode composition seeded from the stored order and
// persists the result upstream.
func (s *Service) Actualizar(ctx context.Context, id int64, draft Draft) (*models.PedidoDTO, error) {
	existente, err := s.pedidos.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	clientes, articulos, err := s.referencias(ctx)
	if err != nil {
		return nil, err
	}

	composer := NewComposerFrom(*existente, clientes, articulos, func(ctx context.Context, dto models.PedidoDTO) error {
		_, err := s.pedidos.Actualizar(ctx, id, dto)
		return err
	})

	if err := aplicarDraft(composer, draft, true); err != nil {
		return nil, err
	}

	return composer.Submit(ctx)
}

// Eliminar removes an order.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.pedidos.Eliminar(ctx, id)
}

// ActualizarEstado changes only the order state, resubmitting the rest of the
// order untouched. The transitional Despachado state is accepted here and
// nowhere else.
func (s *Service) ActualizarEstado(ctx context.Context, id int64, estado string) (*models.Pedido, error) {
	if !models.EstadoValido(estado, true) {
		return nil, errValidacion(msgEstadoInvalido)
	}

	pedido, err := s.pedidos.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := pedido.DTO()
	dto.Estado = estado

	actualizado, err := s.pedidos.Actualizar(ctx, id, dto)
	if err != nil {
		return nil, fmt.Errorf("update estado of pedido %d: %w", id, err)
	}

	s.logger.Info("pedido estado updated", zap.Int64("id", id), zap.String("estado", estado))
	return actualizado, nil
}

// aplicarDraft replays the submitted form over a composer through its field
// setters, so client/branch constraints and the article price auto-fill run
// exactly as they would in interactive editing. The submitted unit price is
// applied after the article selection, preserving it as the snapshot value.
func aplicarDraft(composer *Composer, draft Draft, editing bool) error {
	composer.SetCliente(draft.ClienteID)
	if err := composer.SetSucursal(draft.SucursalID); err != nil {
		return err
	}
	if draft.FechaPedido != "" {
		if err := composer.SetFecha(draft.FechaPedido); err != nil {
			return err
		}
	}
	if editing && draft.Estado != "" {
		if err := composer.SetEstado(draft.Estado); err != nil {
			return err
		}
	}

	// Replace seeded lines wholesale with the submitted ones.
	for len(composer.Items()) > 0 {
		composer.RemoveItem(0)
	}
	for i, item := range draft.Items {
		composer.AddItem()
		composer.UpdateItem(i, FieldArticulo, item.ArticuloID)
		composer.UpdateItem(i, FieldCantidad, item.Cantidad)
		composer.UpdateItem(i, FieldPrecioUnitario, item.PrecioUnitario)
		composer.UpdateItem(i, FieldObservaciones, item.Observaciones)
	}

	return nil
}

func (s *Service) referencias(ctx context.Context) ([]models.Cliente, []models.Articulo, error) {
	clientes, err := s.clientes.Listar(ctx)
	if err != nil {
		return nil, nil, err
	}
	articulos, err := s.articulos.Listar(ctx)
	if err != nil {
		return nil, nil, err
	}
	return clientes, articulos, nil
}

func (s *Service) catalogos(ctx context.Context) (map[int64]models.Cliente, map[int64]models.Articulo, error) {
	clientes, articulos, err := s.referencias(ctx)
	if err != nil {
		return nil, nil, err
	}

	clientesPorID := make(map[int64]models.Cliente, len(clientes))
	for _, c := range clientes {
		clientesPorID[c.ID] = c
	}
	articulosPorID := make(map[int64]models.Articulo, len(articulos))
	for _, a := range articulos {
		articulosPorID[a.ID] = a
	}
	return clientesPorID, articulosPorID, nil
}

package remote

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/clients/officeapi"
)

// PedidoRepository defines the operations available on the orders resource.
type PedidoRepository interface {
	Listar(ctx context.Context) ([]models.Pedido, error)
	Obtener(ctx context.Context, id int64) (*models.Pedido, error)
	Crear(ctx context.Context, dto models.PedidoDTO) (*models.Pedido, error)
	Actualizar(ctx context.Context, id int64, dto models.PedidoDTO) (*models.Pedido, error)
	Eliminar(ctx context.Context, id int64) error
}

type pedidoRepository struct {
	api    *officeapi.Client
	logger *zap.Logger
}

// NewPedidoRepository wires an order repository over the office API.
func NewPedidoRepository(api *officeapi.Client, logger *zap.Logger) PedidoRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &pedidoRepository{api: api, logger: logger}
}

func (r *pedidoRepository) Listar(ctx context.Context) ([]models.Pedido, error) {
	var pedidos []models.Pedido
	if err := r.api.Get(ctx, "/pedidos", &pedidos); err != nil {
		return nil, fmt.Errorf("list pedidos: %w", err)
	}
	return pedidos, nil
}

func (r *pedidoRepository) Obtener(ctx context.Context, id int64) (*models.Pedido, error) {
	pedido := new(models.Pedido)
	if err := r.api.Get(ctx, fmt.Sprintf("/pedidos/%d", id), pedido); err != nil {
		return nil, fmt.Errorf("get pedido %d: %w", id, err)
	}
	return pedido, nil
}

func (r *pedidoRepository) Crear(ctx context.Context, dto models.PedidoDTO) (*models.Pedido, error) {
	creado := new(models.Pedido)
	if err := r.api.Post(ctx, "/pedidos", dto, creado); err != nil {
		return nil, fmt.Errorf("create pedido: %w", err)
	}
	r.logger.Info("pedido created", zap.Int64("id", creado.ID), zap.Int64("cliente_id", dto.ClienteID))
	return creado, nil
}

func (r *pedidoRepository) Actualizar(ctx context.Context, id int64, dto models.PedidoDTO) (*models.Pedido, error) {
	actualizado := new(models.Pedido)
	if err := r.api.Put(ctx, fmt.Sprintf("/pedidos/%d", id), dto, actualizado); err != nil {
		return nil, fmt.Errorf("update pedido %d: %w", id, err)
	}
	return actualizado, nil
}

func (r *pedidoRepository) Eliminar(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/pedidos/%d", id)); err != nil {
		return fmt.Errorf("delete pedido %d: %w", id, err)
	}
	r.logger.Info("pedido deleted", zap.Int64("id", id))
	return nil
}

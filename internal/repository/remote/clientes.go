// Package remote adapts the external office API into per-entity repository
// interfaces. Reference normalization happens during decoding, so everything
// past this boundary sees resolved ids only.
package remote

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/clients/officeapi"
)

// ClienteRepository defines the operations available on the clients resource.
type ClienteRepository interface {
	Listar(ctx context.Context) ([]models.Cliente, error)
	Obtener(ctx context.Context, id int64) (*models.Cliente, error)
	Crear(ctx context.Context, dto models.ClienteDTO) (*models.Cliente, error)
	Actualizar(ctx context.Context, id int64, dto models.ClienteDTO) (*models.Cliente, error)
	Eliminar(ctx context.Context, id int64) error
}

type clienteRepository struct {
	api    *officeapi.Client
	logger *zap.Logger
}

// NewClienteRepository wires a client repository over the office API.
func NewClienteRepository(api *officeapi.Client, logger *zap.Logger) ClienteRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &clienteRepository{api: api, logger: logger}
}

func (r *clienteRepository) Listar(ctx context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	if err := r.api.Get(ctx, "/clientes", &clientes); err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	return clientes, nil
}

func (r *clienteRepository) Obtener(ctx context.Context, id int64) (*models.Cliente, error) {
	cliente := new(models.Cliente)
	if err := r.api.Get(ctx, fmt.Sprintf("/clientes/%d", id), cliente); err != nil {
		return nil, fmt.Errorf("get cliente %d: %w", id, err)
	}
	return cliente, nil
}

func (r *clienteRepository) Crear(ctx context.Context, dto models.ClienteDTO) (*models.Cliente, error) {
	creado := new(models.Cliente)
	if err := r.api.Post(ctx, "/clientes", dto, creado); err != nil {
		return nil, fmt.Errorf("create cliente: %w", err)
	}
	r.logger.Info("cliente created", zap.Int64("id", creado.ID))
	return creado, nil
}

func (r *clienteRepository) Actualizar(ctx context.Context, id int64, dto models.ClienteDTO) (*models.Cliente, error) {
	actualizado := new(models.Cliente)
	if err := r.api.Put(ctx, fmt.Sprintf("/clientes/%d", id), dto, actualizado); err != nil {
		return nil, fmt.Errorf("update cliente %d: %w", id, err)
	}
	return actualizado, nil
}

func (r *clienteRepository) Eliminar(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/clientes/%d", id)); err != nil {
		return fmt.Errorf("delete cliente %d: %w", id, err)
	}
	r.logger.Info("cliente deleted", zap.Int64("id", id))
	return nil
}

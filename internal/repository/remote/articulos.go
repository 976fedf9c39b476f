package remote

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/clients/officeapi"
)

// ArticuloRepository defines the operations available on the catalog resource.
type ArticuloRepository interface {
	Listar(ctx context.Context) ([]models.Articulo, error)
	Obtener(ctx context.Context, id int64) (*models.Articulo, error)
	Crear(ctx context.Context, dto models.ArticuloDTO) (*models.Articulo, error)
	Actualizar(ctx context.Context, id int64, dto models.ArticuloDTO) (*models.Articulo, error)
	Eliminar(ctx context.Context, id int64) error
}

type articuloRepository struct {
	api    *officeapi.Client
	logger *zap.Logger
}

// NewArticuloRepository wires a catalog repository over the office API.
func NewArticuloRepository(api *officeapi.Client, logger *zap.Logger) ArticuloRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &articuloRepository{api: api, logger: logger}
}

func (r *articuloRepository) Listar(ctx context.Context) ([]models.Articulo, error) {
	var articulos []models.Articulo
	if err := r.api.Get(ctx, "/articulos", &articulos); err != nil {
		return nil, fmt.Errorf("list articulos: %w", err)
	}
	return articulos, nil
}

func (r *articuloRepository) Obtener(ctx context.Context, id int64) (*models.Articulo, error) {
	articulo := new(models.Articulo)
	if err := r.api.Get(ctx, fmt.Sprintf("/articulos/%d", id), articulo); err != nil {
		return nil, fmt.Errorf("get articulo %d: %w", id, err)
	}
	return articulo, nil
}

func (r *articuloRepository) Crear(ctx context.Context, dto models.ArticuloDTO) (*models.Articulo, error) {
	creado := new(models.Articulo)
	if err := r.api.Post(ctx, "/articulos", dto, creado); err != nil {
		return nil, fmt.Errorf("create articulo: %w", err)
	}
	r.logger.Info("articulo created", zap.Int64("id", creado.ID), zap.String("nombre", creado.Nombre))
	return creado, nil
}

func (r *articuloRepository) Actualizar(ctx context.Context, id int64, dto models.ArticuloDTO) (*models.Articulo, error) {
	actualizado := new(models.Articulo)
	if err := r.api.Put(ctx, fmt.Sprintf("/articulos/%d", id), dto, actualizado); err != nil {
		return nil, fmt.Errorf("update articulo %d: %w", id, err)
	}
	return actualizado, nil
}

func (r *articuloRepository) Eliminar(ctx context.Context, id int64) error {
	if err := r.api.Delete(ctx, fmt.Sprintf("/articulos/%d", id)); err != nil {
		return fmt.Errorf("delete articulo %d: %w", id, err)
	}
	r.logger.Info("articulo deleted", zap.Int64("id", id))
	return nil
}

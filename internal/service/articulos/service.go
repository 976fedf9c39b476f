package articulos

import (
	"context"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/remote"
)

const (
	msgNombreVacio       = "El nombre del artículo es obligatorio"
	msgCategoriaInvalida = "La categoría no es válida"
	msgPrecioNegativo    = "El precio no puede ser negativo"
)

// ValidationError marks catalog failures detected before any network call.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Service exposes the catalog operations behind the articulos tab.
type Service struct {
	articulos remote.ArticuloRepository
	logger    *zap.Logger
}

// NewService wires a new catalog service instance.
func NewService(articulos remote.ArticuloRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{articulos: articulos, logger: logger}
}

// Listar returns the full catalog.
func (s *Service) Listar(ctx context.Context) ([]models.Articulo, error) {
	return s.articulos.Listar(ctx)
}

// Obtener returns one product.
func (s *Service) Obtener(ctx context.Context, id int64) (*models.Articulo, error) {
	return s.articulos.Obtener(ctx, id)
}

// Crear validates and creates a product.
func (s *Service) Crear(ctx context.Context, dto models.ArticuloDTO) (*models.Articulo, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	return s.articulos.Crear(ctx, dto)
}

// Actualizar validates and updates a product.
func (s *Service) Actualizar(ctx context.Context, id int64, dto models.ArticuloDTO) (*models.Articulo, error) {
	if err := validar(dto); err != nil {
		return nil, err
	}
	return s.articulos.Actualizar(ctx, id, dto)
}

// Eliminar removes a product.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.articulos.Eliminar(ctx, id)
}

func validar(dto models.ArticuloDTO) error {
	if dto.Nombre == "" {
		return &ValidationError{msg: msgNombreVacio}
	}
	if !models.CategoriaValida(dto.Categoria) {
		return &ValidationError{msg: msgCategoriaInvalida}
	}
	if dto.Precio < 0 {
		return &ValidationError{msg: msgPrecioNegativo}
	}
	return nil
}

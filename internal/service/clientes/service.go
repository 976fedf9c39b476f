package clientes

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/repository/remote"
)

// Service exposes the client operations behind the clientes tab.
type Service struct {
	clientes remote.ClienteRepository
	logger   *zap.Logger
}

// NewService wires a new client service instance.
func NewService(clientes remote.ClienteRepository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{clientes: clientes, logger: logger}
}

// Listar returns all clients.
func (s *Service) Listar(ctx context.Context) ([]models.Cliente, error) {
	return s.clientes.Listar(ctx)
}

// Obtener returns one client.
func (s *Service) Obtener(ctx context.Context, id int64) (*models.Cliente, error) {
	return s.clientes.Obtener(ctx, id)
}

// Crear validates the draft's branch list and creates the client upstream.
func (s *Service) Crear(ctx context.Context, draft Draft) (*models.Cliente, error) {
	if err := validarSucursales(draft); err != nil {
		return nil, err
	}
	return s.clientes.Crear(ctx, draft.DTO())
}

// Actualizar validates the draft's branch list and updates the client
// upstream.
func (s *Service) Actualizar(ctx context.Context, id int64, draft Draft) (*models.Cliente, error) {
	if err := validarSucursales(draft); err != nil {
		return nil, err
	}
	return s.clientes.Actualizar(ctx, id, draft.DTO())
}

// Eliminar removes a client. No cascade check against existing orders is
// performed here; the backend owns that decision.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	return s.clientes.Eliminar(ctx, id)
}

// ActualizarNotas replaces only the free-text notes, resubmitting the rest of
// the client untouched.
func (s *Service) ActualizarNotas(ctx context.Context, id int64, notas string) (*models.Cliente, error) {
	cliente, err := s.clientes.Obtener(ctx, id)
	if err != nil {
		return nil, err
	}

	dto := cliente.DTO()
	dto.Notas = notas

	actualizado, err := s.clientes.Actualizar(ctx, id, dto)
	if err != nil {
		return nil, fmt.Errorf("update notas of cliente %d: %w", id, err)
	}

	s.logger.Info("cliente notas updated", zap.Int64("id", id))
	return actualizado, nil
}

// validarSucursales replays the branch list through a fresh draft so the
// trim, empty-name and duplicate rules apply to submitted payloads exactly as
// they do to interactive adds.
func validarSucursales(draft Draft) error {
	replay := Draft{}
	for _, sucursal := range draft.Sucursales {
		if err := replay.AddSucursal(sucursal.Nombre); err != nil {
			return err
		}
	}
	return nil
}

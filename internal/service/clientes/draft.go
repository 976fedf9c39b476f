package clientes

import (
	"strings"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

const (
	msgSucursalVacia     = "El nombre de la sucursal no puede estar vacío"
	msgSucursalDuplicada = "Ya existe una sucursal con ese nombre"
)

// ValidationError marks branch-list failures detected before any network
// call.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// Draft is the in-progress state of a client being created or edited,
// including its branch sub-list.
type Draft struct {
	NombreCompleto string            `json:"nombreCompleto"`
	Email          string            `json:"email"`
	Telefono       string            `json:"telefono"`
	Direccion      string            `json:"direccion"`
	Notas          string            `json:"notas"`
	Sucursales     []models.Sucursal `json:"sucursales"`
}

// DraftFrom seeds an edit draft from an existing client.
func DraftFrom(cliente models.Cliente) Draft {
	return Draft{
		NombreCompleto: cliente.NombreCompleto,
		Email:          cliente.Email,
		Telefono:       cliente.Telefono,
		Direccion:      cliente.Direccion,
		Notas:          cliente.Notas,
		Sucursales:     append([]models.Sucursal(nil), cliente.Sucursales...),
	}
}

// AddSucursal appends a new branch after trimming the name, rejecting empty
// names and case-insensitive duplicates against the current list.
func (d *Draft) AddSucursal(nombre string) error {
	nombre = strings.TrimSpace(nombre)
	if nombre == "" {
		return &ValidationError{msg: msgSucursalVacia}
	}

	for _, s := range d.Sucursales {
		if strings.EqualFold(s.Nombre, nombre) {
			return &ValidationError{msg: msgSucursalDuplicada}
		}
	}

	d.Sucursales = append(d.Sucursales, models.Sucursal{Nombre: nombre})
	return nil
}

// RemoveSucursal deletes the branch at the given position. Out-of-range
// indexes are ignored.
func (d *Draft) RemoveSucursal(index int) {
	if index < 0 || index >= len(d.Sucursales) {
		return
	}
	d.Sucursales = append(d.Sucursales[:index], d.Sucursales[index+1:]...)
}

// DTO converts the draft into the client write payload. Branch ids assigned
// by the backend are kept so updates do not recreate existing branches.
func (d Draft) DTO() models.ClienteDTO {
	sucursales := d.Sucursales
	if sucursales == nil {
		sucursales = []models.Sucursal{}
	}
	return models.ClienteDTO{
		NombreCompleto: d.NombreCompleto,
		Email:          d.Email,
		Telefono:       d.Telefono,
		Direccion:      d.Direccion,
		Notas:          d.Notas,
		Sucursales:     sucursales,
	}
}

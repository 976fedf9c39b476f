package models

import "encoding/json"

// Cliente represents a customer as served by the upstream office API.
type Cliente struct {
	ID             int64      `json:"id"`
	NombreCompleto string     `json:"nombreCompleto"`
	Email          string     `json:"email"`
	Telefono       string     `json:"telefono"`
	Direccion      string     `json:"direccion"`
	Notas          string     `json:"notas"`
	Sucursales     []Sucursal `json:"sucursales"`
}

// Sucursal is a named delivery/service location belonging to one client.
type Sucursal struct {
	ID     int64  `json:"id,omitempty"`
	Nombre string `json:"nombre"`
}

// UnmarshalJSON accepts both the bare-string and the {id,nombre} object forms
// the upstream returns for client branches.
func (s *Sucursal) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &s.Nombre)
	}

	type alias Sucursal
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Sucursal(a)
	return nil
}

// Sucursal returns the branch with the given id, if the client has it.
func (c Cliente) Sucursal(id int64) (Sucursal, bool) {
	for _, s := range c.Sucursales {
		if s.ID == id {
			return s, true
		}
	}
	return Sucursal{}, false
}

// ClienteDTO is the write payload for creating or updating a client. Branch
// ids are only included when already assigned by the backend.
type ClienteDTO struct {
	NombreCompleto string     `json:"nombreCompleto"`
	Email          string     `json:"email"`
	Telefono       string     `json:"telefono"`
	Direccion      string     `json:"direccion"`
	Notas          string     `json:"notas"`
	Sucursales     []Sucursal `json:"sucursales"`
}

// DTO converts a loaded client back into its write payload.
func (c Cliente) DTO() ClienteDTO {
	sucursales := c.Sucursales
	if sucursales == nil {
		sucursales = []Sucursal{}
	}
	return ClienteDTO{
		NombreCompleto: c.NombreCompleto,
		Email:          c.Email,
		Telefono:       c.Telefono,
		Direccion:      c.Direccion,
		Notas:          c.Notas,
		Sucursales:     sucursales,
	}
}

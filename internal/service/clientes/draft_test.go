package clientes

import (
	"errors"
	"testing"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

func TestDraft_AddSucursal(t *testing.T) {
	t.Run("appends trimmed name", func(t *testing.T) {
		var d Draft
		if err := d.AddSucursal("  Centro  "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(d.Sucursales) != 1 || d.Sucursales[0].Nombre != "Centro" {
			t.Errorf("sucursales = %+v, want one named Centro", d.Sucursales)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		var d Draft
		err := d.AddSucursal("   ")

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Error() != "El nombre de la sucursal no puede estar vacío" {
			t.Errorf("message = %q", ve.Error())
		}
		if len(d.Sucursales) != 0 {
			t.Errorf("sucursales = %+v, want none", d.Sucursales)
		}
	})

	t.Run("rejects case-insensitive duplicate", func(t *testing.T) {
		d := Draft{Sucursales: []models.Sucursal{{ID: 1, Nombre: "Centro"}}}
		err := d.AddSucursal("centro")

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if ve.Error() != "Ya existe una sucursal con ese nombre" {
			t.Errorf("message = %q", ve.Error())
		}
		if len(d.Sucursales) != 1 {
			t.Errorf("sucursales = %d, want 1", len(d.Sucursales))
		}
	})

	t.Run("allows distinct names", func(t *testing.T) {
		var d Draft
		for _, nombre := range []string{"Centro", "Heredia", "Cartago"} {
			if err := d.AddSucursal(nombre); err != nil {
				t.Fatalf("AddSucursal(%q): %v", nombre, err)
			}
		}
		if len(d.Sucursales) != 3 {
			t.Errorf("sucursales = %d, want 3", len(d.Sucursales))
		}
	})
}

func TestDraft_RemoveSucursal(t *testing.T) {
	d := Draft{Sucursales: []models.Sucursal{
		{ID: 1, Nombre: "Centro"},
		{ID: 2, Nombre: "Heredia"},
		{ID: 3, Nombre: "Cartago"},
	}}

	d.RemoveSucursal(1)
	if len(d.Sucursales) != 2 || d.Sucursales[1].Nombre != "Cartago" {
		t.Errorf("after remove: %+v", d.Sucursales)
	}

	// Out-of-range indexes are ignored.
	d.RemoveSucursal(-1)
	d.RemoveSucursal(5)
	if len(d.Sucursales) != 2 {
		t.Errorf("sucursales = %d, want 2", len(d.Sucursales))
	}
}

func TestDraftFrom_CopiesBranchList(t *testing.T) {
	cliente := models.Cliente{
		ID:             7,
		NombreCompleto: "Muebles del Valle",
		Email:          "ventas@mueblesdelvalle.cr",
		Sucursales:     []models.Sucursal{{ID: 21, Nombre: "Centro"}},
	}

	d := DraftFrom(cliente)
	if err := d.AddSucursal("Heredia"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cliente.Sucursales) != 1 {
		t.Errorf("source client mutated: %+v", cliente.Sucursales)
	}
	if d.NombreCompleto != "Muebles del Valle" || d.Email != "ventas@mueblesdelvalle.cr" {
		t.Errorf("draft fields not seeded: %+v", d)
	}
}

func TestDraft_DTO(t *testing.T) {
	d := Draft{
		NombreCompleto: "Oficinas Brenes",
		Sucursales:     []models.Sucursal{{ID: 4, Nombre: "Centro"}, {Nombre: "Nueva"}},
	}

	dto := d.DTO()
	if dto.NombreCompleto != "Oficinas Brenes" {
		t.Errorf("nombreCompleto = %q", dto.NombreCompleto)
	}
	// Existing branch ids survive so updates do not recreate branches.
	if dto.Sucursales[0].ID != 4 {
		t.Errorf("sucursal id = %d, want 4", dto.Sucursales[0].ID)
	}
	if dto.Sucursales[1].ID != 0 {
		t.Errorf("new sucursal id = %d, want 0", dto.Sucursales[1].ID)
	}

	// A nil list serializes as an empty array, never null.
	empty := Draft{NombreCompleto: "Sin Sucursales"}.DTO()
	if empty.Sucursales == nil {
		t.Error("nil sucursales should become an empty slice")
	}
}

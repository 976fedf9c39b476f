package models

import (
	"encoding/json"
	"testing"
)

func TestSucursal_UnmarshalBothShapes(t *testing.T) {
	t.Run("bare string", func(t *testing.T) {
		var s Sucursal
		if err := json.Unmarshal([]byte(`"Centro"`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s.Nombre != "Centro" || s.ID != 0 {
			t.Errorf("sucursal = %+v", s)
		}
	})

	t.Run("object", func(t *testing.T) {
		var s Sucursal
		if err := json.Unmarshal([]byte(`{"id": 21, "nombre": "Centro"}`), &s); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if s.ID != 21 || s.Nombre != "Centro" {
			t.Errorf("sucursal = %+v", s)
		}
	})

	t.Run("mixed list on a client", func(t *testing.T) {
		payload := `{"id": 7, "nombreCompleto": "Muebles del Valle", "sucursales": ["Centro", {"id": 22, "nombre": "Heredia"}]}`

		var c Cliente
		if err := json.Unmarshal([]byte(payload), &c); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(c.Sucursales) != 2 {
			t.Fatalf("sucursales = %d, want 2", len(c.Sucursales))
		}
		if c.Sucursales[0].Nombre != "Centro" || c.Sucursales[1].ID != 22 {
			t.Errorf("sucursales = %+v", c.Sucursales)
		}
	})
}

func TestSucursal_MarshalOmitsUnassignedID(t *testing.T) {
	data, err := json.Marshal(Sucursal{Nombre: "Nueva"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"nombre":"Nueva"}` {
		t.Errorf("payload = %s", data)
	}
}

func TestCliente_Sucursal(t *testing.T) {
	c := Cliente{Sucursales: []Sucursal{{ID: 21, Nombre: "Centro"}}}

	if s, ok := c.Sucursal(21); !ok || s.Nombre != "Centro" {
		t.Errorf("Sucursal(21) = %+v, %v", s, ok)
	}
	if _, ok := c.Sucursal(99); ok {
		t.Error("Sucursal(99) should not be found")
	}
}

func TestCliente_DTONilBranchList(t *testing.T) {
	dto := Cliente{NombreCompleto: "Oficinas Brenes"}.DTO()
	if dto.Sucursales == nil {
		t.Error("nil sucursales should become an empty slice")
	}
}

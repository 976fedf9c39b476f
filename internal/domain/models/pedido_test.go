package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestPedido_UnmarshalNestedReferences(t *testing.T) {
	payload := `{
		"id": 12,
		"cliente": {"id": 7, "nombreCompleto": "Muebles del Valle"},
		"sucursal": {"id": 21, "nombre": "Centro"},
		"estado": "Pendiente",
		"fechaPedido": "2025-03-10",
		"items": [
			{"articulo": {"id": 3, "nombre": "Comedor 6 sillas"}, "cantidad": 2, "precioUnitario": 1000, "observaciones": "entregar en bodega"}
		]
	}`

	var p Pedido
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.ClienteID != 7 || p.ClienteNombre != "Muebles del Valle" {
		t.Errorf("cliente = %d %q", p.ClienteID, p.ClienteNombre)
	}
	if p.SucursalID == nil || *p.SucursalID != 21 || p.SucursalNombre != "Centro" {
		t.Errorf("sucursal = %v %q", p.SucursalID, p.SucursalNombre)
	}
	if len(p.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(p.Items))
	}
	item := p.Items[0]
	if item.ArticuloID != 3 || item.ArticuloNombre != "Comedor 6 sillas" {
		t.Errorf("articulo = %d %q", item.ArticuloID, item.ArticuloNombre)
	}
	if item.Cantidad != 2 || item.PrecioUnitario != 1000 || item.Observaciones != "entregar en bodega" {
		t.Errorf("item = %+v", item)
	}
}

func TestPedido_UnmarshalFlatIDs(t *testing.T) {
	payload := `{
		"id": 12,
		"clienteId": 7,
		"sucursalId": 21,
		"estado": "En Proceso",
		"fechaPedido": "2025-03-10",
		"items": [
			{"articuloId": 3, "cantidad": 2, "precioUnitario": 1000, "observaciones": null}
		]
	}`

	var p Pedido
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if p.ClienteID != 7 || p.ClienteNombre != "" {
		t.Errorf("cliente = %d %q", p.ClienteID, p.ClienteNombre)
	}
	if p.SucursalID == nil || *p.SucursalID != 21 {
		t.Errorf("sucursalId = %v, want 21", p.SucursalID)
	}
	if p.Items[0].ArticuloID != 3 {
		t.Errorf("articuloId = %d, want 3", p.Items[0].ArticuloID)
	}
	if p.Items[0].Observaciones != "" {
		t.Errorf("null observaciones = %q, want empty", p.Items[0].Observaciones)
	}
}

func TestPedido_UnmarshalWithoutSucursal(t *testing.T) {
	payload := `{"id": 5, "clienteId": 8, "estado": "Pendiente", "fechaPedido": "2025-03-12", "items": []}`

	var p Pedido
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.SucursalID != nil {
		t.Errorf("sucursalId = %v, want nil", p.SucursalID)
	}
}

func TestPedidoDTO_Marshal(t *testing.T) {
	t.Run("nil sucursal serializes as null", func(t *testing.T) {
		data, err := json.Marshal(PedidoDTO{
			ClienteID:   7,
			Estado:      EstadoPendiente,
			FechaPedido: "2025-03-15",
			Items:       []PedidoItemDTO{},
		})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(data), `"sucursalId":null`) {
			t.Errorf("payload = %s", data)
		}
	})

	t.Run("empty observaciones serializes as null", func(t *testing.T) {
		data, err := json.Marshal(PedidoItem{ArticuloID: 3, Cantidad: 1, PrecioUnitario: 500}.DTO())
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !strings.Contains(string(data), `"observaciones":null`) {
			t.Errorf("payload = %s", data)
		}
	})
}

func TestPedido_DTORoundTrip(t *testing.T) {
	sucursal := int64(21)
	p := Pedido{
		ID:          12,
		ClienteID:   7,
		SucursalID:  &sucursal,
		Estado:      EstadoCompletado,
		FechaPedido: "2025-03-10",
		Items: []PedidoItem{
			{ArticuloID: 3, Cantidad: 2, PrecioUnitario: 1000, Observaciones: "frágil"},
		},
	}

	dto := p.DTO()
	if dto.ClienteID != 7 || dto.Estado != EstadoCompletado || dto.FechaPedido != "2025-03-10" {
		t.Errorf("dto = %+v", dto)
	}
	if dto.SucursalID == nil || *dto.SucursalID != 21 {
		t.Errorf("sucursalId = %v, want 21", dto.SucursalID)
	}
	if dto.Items[0].Observaciones == nil || *dto.Items[0].Observaciones != "frágil" {
		t.Errorf("observaciones = %v", dto.Items[0].Observaciones)
	}
}

func TestEstadoValido(t *testing.T) {
	for _, estado := range Estados {
		if !EstadoValido(estado, false) {
			t.Errorf("EstadoValido(%q, false) = false", estado)
		}
	}
	if EstadoValido(EstadoDespachado, false) {
		t.Error("Despachado should be rejected outside the status action")
	}
	if !EstadoValido(EstadoDespachado, true) {
		t.Error("Despachado should be accepted by the status action")
	}
	if EstadoValido("Perdido", true) {
		t.Error("unknown estado accepted")
	}
}

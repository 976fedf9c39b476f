package pedidos

import (
	"testing"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.PedidoItem
		want  float64
	}{
		{"nil slice", nil, 0},
		{"empty slice", []models.PedidoItem{}, 0},
		{"single line", []models.PedidoItem{{Cantidad: 2, PrecioUnitario: 1000}}, 2000},
		{
			"multiple lines",
			[]models.PedidoItem{
				{Cantidad: 2, PrecioUnitario: 100},
				{Cantidad: 1, PrecioUnitario: 50},
			},
			250,
		},
		{"zero quantity contributes nothing", []models.PedidoItem{{Cantidad: 0, PrecioUnitario: 900}}, 0},
		{"fractional price", []models.PedidoItem{{Cantidad: 3, PrecioUnitario: 10.5}}, 31.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Total(tt.items)
			if diff := got - tt.want; diff > 0.001 || diff < -0.001 {
				t.Errorf("Total() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestTotal_DoesNotMutateInput(t *testing.T) {
	items := []models.PedidoItem{{ArticuloID: 3, Cantidad: 2, PrecioUnitario: 1000}}
	_ = Total(items)

	if items[0].Cantidad != 2 || items[0].PrecioUnitario != 1000 {
		t.Errorf("input mutated: %+v", items[0])
	}
}

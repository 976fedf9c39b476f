package pedidos

import "github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"

// Total returns the sum of cantidad × precioUnitario over the given lines.
// Returns 0 for a nil or empty slice. The order total is always recomputed
// from its lines, never cached on the entity.
func Total(items []models.PedidoItem) float64 {
	var total float64
	for _, item := range items {
		total += float64(item.Cantidad) * item.PrecioUnitario
	}
	return total
}

package pedidos

import (
	"math"
	"time"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

// DiasTranscurridos returns the number of whole days elapsed between the
// order date and now. Negative when the order date lies in the future.
func DiasTranscurridos(fechaPedido, now time.Time) int {
	return int(math.Floor(now.Sub(fechaPedido).Hours() / 24))
}

// Prioridad classifies an order's urgency from its age: more than 10 whole
// days is alta, 7 to 10 inclusive is media, anything younger is baja. Both
// instants are explicit parameters so the classification is deterministic.
func Prioridad(fechaPedido, now time.Time) string {
	dias := DiasTranscurridos(fechaPedido, now)

	switch {
	case dias > 10:
		return models.PrioridadAlta
	case dias >= 7:
		return models.PrioridadMedia
	default:
		return models.PrioridadBaja
	}
}

// PrioridadFecha is the ISO-date convenience form of Prioridad. Unparseable
// dates classify as baja.
func PrioridadFecha(fechaPedido string, now time.Time) string {
	fecha, err := time.Parse(models.FechaLayout, fechaPedido)
	if err != nil {
		return models.PrioridadBaja
	}
	return Prioridad(fecha, now)
}

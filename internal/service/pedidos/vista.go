package pedidos

import (
	"time"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
	"github.com/FranciscoAraya01/sistemaOficina-ft/pkg/money"
)

// PedidoVista is the enriched read model served to the tabs: the stored
// fields plus the derived total, its display string, the priority tier and
// resolved display names.
type PedidoVista struct {
	ID              int64       `json:"id"`
	ClienteID       int64       `json:"clienteId"`
	ClienteNombre   string      `json:"clienteNombre"`
	SucursalID      *int64      `json:"sucursalId"`
	SucursalNombre  string      `json:"sucursalNombre"`
	Estado          string      `json:"estado"`
	FechaPedido     string      `json:"fechaPedido"`
	Prioridad       string      `json:"prioridad"`
	Total           float64     `json:"total"`
	TotalFormateado string      `json:"totalFormateado"`
	Items           []ItemVista `json:"items"`
}

// ItemVista is one order line with its subtotal and resolved article name.
type ItemVista struct {
	ArticuloID     int64   `json:"articuloId"`
	ArticuloNombre string  `json:"articuloNombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Subtotal       float64 `json:"subtotal"`
	Observaciones  string  `json:"observaciones"`
}

func buildVista(pedido models.Pedido, clientes map[int64]models.Cliente, articulos map[int64]models.Articulo, now time.Time) PedidoVista {
	total := Total(pedido.Items)

	vista := PedidoVista{
		ID:              pedido.ID,
		ClienteID:       pedido.ClienteID,
		ClienteNombre:   pedido.ClienteNombre,
		SucursalID:      pedido.SucursalID,
		SucursalNombre:  pedido.SucursalNombre,
		Estado:          pedido.Estado,
		FechaPedido:     pedido.FechaPedido,
		Prioridad:       PrioridadFecha(pedido.FechaPedido, now),
		Total:           total,
		TotalFormateado: money.FormatCRC(total),
		Items:           make([]ItemVista, 0, len(pedido.Items)),
	}

	if vista.ClienteNombre == "" {
		if cliente, ok := clientes[pedido.ClienteID]; ok {
			vista.ClienteNombre = cliente.NombreCompleto
		} else {
			vista.ClienteNombre = "Desconocido"
		}
	}

	if vista.SucursalNombre == "" {
		vista.SucursalNombre = "-"
		if pedido.SucursalID != nil {
			if cliente, ok := clientes[pedido.ClienteID]; ok {
				if sucursal, ok := cliente.Sucursal(*pedido.SucursalID); ok {
					vista.SucursalNombre = sucursal.Nombre
				}
			}
		}
	}

	for _, item := range pedido.Items {
		itemVista := ItemVista{
			ArticuloID:     item.ArticuloID,
			ArticuloNombre: item.ArticuloNombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       float64(item.Cantidad) * item.PrecioUnitario,
			Observaciones:  item.Observaciones,
		}
		if itemVista.ArticuloNombre == "" {
			if articulo, ok := articulos[item.ArticuloID]; ok {
				itemVista.ArticuloNombre = articulo.Nombre
			} else {
				itemVista.ArticuloNombre = "Desconocido"
			}
		}
		vista.Items = append(vista.Items, itemVista)
	}

	return vista
}

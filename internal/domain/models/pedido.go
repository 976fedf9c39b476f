package models

import "encoding/json"

// Order states. The canonical four are freely editable; EstadoDespachado is a
// transitional value reachable only through the status-update action.
const (
	EstadoPendiente  = "Pendiente"
	EstadoEnProceso  = "En Proceso"
	EstadoCompletado = "Completado"
	EstadoCancelado  = "Cancelado"
	EstadoDespachado = "Despachado"
)

// Estados lists the canonical states offered while editing an order.
var Estados = []string{EstadoPendiente, EstadoEnProceso, EstadoCompletado, EstadoCancelado}

// EstadoValido reports whether estado is an accepted order state, optionally
// including the transitional dispatched value.
func EstadoValido(estado string, conDespachado bool) bool {
	for _, e := range Estados {
		if e == estado {
			return true
		}
	}
	return conDespachado && estado == EstadoDespachado
}

// Priority tiers derived from order age. Never persisted.
const (
	PrioridadAlta  = "alta"
	PrioridadMedia = "media"
	PrioridadBaja  = "baja"
)

// FechaLayout is the ISO date format used for fechaPedido throughout.
const FechaLayout = "2006-01-02"

// Pedido is an order as loaded from the upstream API, with all entity
// references already resolved to ids. Display names are kept when the
// upstream happened to return the nested object form.
type Pedido struct {
	ID             int64
	ClienteID      int64
	ClienteNombre  string
	SucursalID     *int64
	SucursalNombre string
	Estado         string
	FechaPedido    string
	Items          []PedidoItem
}

// PedidoItem is one article/quantity/price line within an order. The unit
// price is a snapshot taken at composition time, never re-derived from the
// catalog.
type PedidoItem struct {
	ArticuloID     int64
	ArticuloNombre string
	Cantidad       int
	PrecioUnitario float64
	Observaciones  string
}

type refObjeto struct {
	ID             int64  `json:"id"`
	Nombre         string `json:"nombre"`
	NombreCompleto string `json:"nombreCompleto"`
}

// UnmarshalJSON normalizes the two reference shapes the upstream may emit:
// nested objects (cliente/sucursal) or flattened ids (clienteId/sucursalId).
func (p *Pedido) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID          int64        `json:"id"`
		ClienteID   int64        `json:"clienteId"`
		Cliente     *refObjeto   `json:"cliente"`
		SucursalID  *int64       `json:"sucursalId"`
		Sucursal    *refObjeto   `json:"sucursal"`
		Estado      string       `json:"estado"`
		FechaPedido string       `json:"fechaPedido"`
		Items       []PedidoItem `json:"items"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID = raw.ID
	p.Estado = raw.Estado
	p.FechaPedido = raw.FechaPedido
	p.Items = raw.Items

	p.ClienteID = raw.ClienteID
	if raw.Cliente != nil {
		p.ClienteID = raw.Cliente.ID
		p.ClienteNombre = raw.Cliente.NombreCompleto
		if p.ClienteNombre == "" {
			p.ClienteNombre = raw.Cliente.Nombre
		}
	}

	p.SucursalID = raw.SucursalID
	if raw.Sucursal != nil {
		id := raw.Sucursal.ID
		p.SucursalID = &id
		p.SucursalNombre = raw.Sucursal.Nombre
	}

	return nil
}

// UnmarshalJSON accepts items carrying either a nested articulo object or a
// bare articuloId. A null observaciones decodes to the empty string.
func (i *PedidoItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ArticuloID     int64      `json:"articuloId"`
		Articulo       *refObjeto `json:"articulo"`
		Cantidad       int        `json:"cantidad"`
		PrecioUnitario float64    `json:"precioUnitario"`
		Observaciones  *string    `json:"observaciones"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.ArticuloID = raw.ArticuloID
	if raw.Articulo != nil {
		i.ArticuloID = raw.Articulo.ID
		i.ArticuloNombre = raw.Articulo.Nombre
	}
	i.Cantidad = raw.Cantidad
	i.PrecioUnitario = raw.PrecioUnitario
	if raw.Observaciones != nil {
		i.Observaciones = *raw.Observaciones
	}

	return nil
}

// PedidoDTO is the normalized write payload for orders. SucursalID marshals
// to null when no branch is selected.
type PedidoDTO struct {
	ClienteID   int64           `json:"clienteId"`
	SucursalID  *int64          `json:"sucursalId"`
	Estado      string          `json:"estado"`
	FechaPedido string          `json:"fechaPedido"`
	Items       []PedidoItemDTO `json:"items"`
}

// PedidoItemDTO is the normalized write payload for one order line.
// Observaciones marshals to null when empty.
type PedidoItemDTO struct {
	ArticuloID     int64   `json:"articuloId"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precioUnitario"`
	Observaciones  *string `json:"observaciones"`
}

// DTO converts a loaded order back into its write payload. Used by actions
// that resubmit the whole order, such as the status update.
func (p Pedido) DTO() PedidoDTO {
	items := make([]PedidoItemDTO, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, item.DTO())
	}
	return PedidoDTO{
		ClienteID:   p.ClienteID,
		SucursalID:  p.SucursalID,
		Estado:      p.Estado,
		FechaPedido: p.FechaPedido,
		Items:       items,
	}
}

// DTO converts a loaded line back into its write payload.
func (i PedidoItem) DTO() PedidoItemDTO {
	var obs *string
	if i.Observaciones != "" {
		o := i.Observaciones
		obs = &o
	}
	return PedidoItemDTO{
		ArticuloID:     i.ArticuloID,
		Cantidad:       i.Cantidad,
		PrecioUnitario: i.PrecioUnitario,
		Observaciones:  obs,
	}
}

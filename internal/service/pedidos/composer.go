package pedidos

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

// User-facing validation messages, checked in order with the first failure
// aborting the submit.
const (
	msgSinArticulos    = "Debes agregar al menos un artículo al pedido"
	msgItemIncompleto  = "Todos los artículos deben tener artículo, cantidad y precio válidos"
	msgClienteInvalido = "Debe seleccionar un cliente válido"
	msgArticuloSinID   = "Todos los artículos deben tener un ID válido"
	msgCantidadMinima  = "La cantidad debe ser mayor a 0"
	msgPrecioMinimo    = "El precio debe ser mayor a 0"
	msgSucursalAjena   = "La sucursal no pertenece al cliente seleccionado"
	msgSucursalSinCli  = "Debe seleccionar un cliente antes de elegir sucursal"
	msgEstadoFijado    = "El estado no se puede modificar al crear el pedido"
	msgEstadoInvalido  = "Estado inválido"
	msgFechaInvalida   = "La fecha del pedido no es válida"
)

// ValidationError marks failures detected before any network call. The draft
// is left untouched so the caller can correct and resubmit.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func errValidacion(msg string) error { return &ValidationError{msg: msg} }

// Draft is the in-progress state of an order being created or edited. Field
// values are kept as raw form strings; parsing happens at submit.
type Draft struct {
	ClienteID   string      `json:"clienteId"`
	SucursalID  string      `json:"sucursalId"`
	Estado      string      `json:"estado"`
	FechaPedido string      `json:"fechaPedido"`
	Items       []ItemDraft `json:"items"`
}

// ItemDraft is one not-yet-validated order line.
type ItemDraft struct {
	ArticuloID     string `json:"articuloId"`
	Cantidad       string `json:"cantidad"`
	PrecioUnitario string `json:"precioUnitario"`
	Observaciones  string `json:"observaciones"`
}

// SaveFunc persists a validated order payload. The composer itself performs
// no I/O beyond invoking it.
type SaveFunc func(ctx context.Context, dto models.PedidoDTO) error

// Composer owns the mutable draft of an order and produces the normalized
// submit payload. It holds the loaded client and catalog lists so branch
// membership and price auto-fill resolve locally.
type Composer struct {
	draft     Draft
	editing   bool
	clientes  []models.Cliente
	articulos []models.Articulo
	save      SaveFunc
}

// NewComposer starts a create-mode draft: estado locked to Pendiente, order
// date set to today, no lines.
func NewComposer(clientes []models.Cliente, articulos []models.Articulo, now time.Time, save SaveFunc) *Composer {
	return &Composer{
		draft: Draft{
			Estado:      models.EstadoPendiente,
			FechaPedido: now.Format(models.FechaLayout),
			Items:       []ItemDraft{},
		},
		clientes:  clientes,
		articulos: articulos,
		save:      save,
	}
}

// NewComposerFrom starts an edit-mode draft seeded from an existing order.
// The order is already normalized, so only id-to-string conversion happens
// here.
func NewComposerFrom(pedido models.Pedido, clientes []models.Cliente, articulos []models.Articulo, save SaveFunc) *Composer {
	items := make([]ItemDraft, 0, len(pedido.Items))
	for _, item := range pedido.Items {
		items = append(items, ItemDraft{
			ArticuloID:     strconv.FormatInt(item.ArticuloID, 10),
			Cantidad:       strconv.Itoa(item.Cantidad),
			PrecioUnitario: strconv.FormatFloat(item.PrecioUnitario, 'f', -1, 64),
			Observaciones:  item.Observaciones,
		})
	}

	sucursal := ""
	if pedido.SucursalID != nil {
		sucursal = strconv.FormatInt(*pedido.SucursalID, 10)
	}

	return &Composer{
		draft: Draft{
			ClienteID:   strconv.FormatInt(pedido.ClienteID, 10),
			SucursalID:  sucursal,
			Estado:      pedido.Estado,
			FechaPedido: pedido.FechaPedido,
			Items:       items,
		},
		editing:   true,
		clientes:  clientes,
		articulos: articulos,
		save:      save,
	}
}

// Draft returns a copy of the current draft state.
func (c *Composer) Draft() Draft {
	d := c.draft
	d.Items = append([]ItemDraft(nil), c.draft.Items...)
	return d
}

// SetCliente selects the order's client. A branch belonging to a different
// client is cleared so the draft never pairs a client with a foreign branch.
func (c *Composer) SetCliente(id string) {
	c.draft.ClienteID = id

	if c.draft.SucursalID == "" {
		return
	}
	if _, ok := c.sucursalDelCliente(c.draft.SucursalID); !ok {
		c.draft.SucursalID = ""
	}
}

// SetSucursal selects a branch. Only branches of the selected client are
// accepted; an empty id clears the selection.
func (c *Composer) SetSucursal(id string) error {
	if id == "" {
		c.draft.SucursalID = ""
		return nil
	}
	if c.draft.ClienteID == "" {
		return errValidacion(msgSucursalSinCli)
	}
	if _, ok := c.sucursalDelCliente(id); !ok {
		return errValidacion(msgSucursalAjena)
	}

	c.draft.SucursalID = id
	return nil
}

// Sucursales lists the branches selectable for the current client. Empty
// until a client is chosen.
func (c *Composer) Sucursales() []models.Sucursal {
	cliente, ok := c.cliente()
	if !ok {
		return nil
	}
	return cliente.Sucursales
}

// SetEstado changes the order state. Immutable while creating; restricted to
// the canonical states while editing.
func (c *Composer) SetEstado(estado string) error {
	if !c.editing {
		return errValidacion(msgEstadoFijado)
	}
	if !models.EstadoValido(estado, false) {
		return errValidacion(msgEstadoInvalido)
	}

	c.draft.Estado = estado
	return nil
}

// SetFecha changes the order date, which must be an ISO date.
func (c *Composer) SetFecha(fecha string) error {
	if _, err := time.Parse(models.FechaLayout, fecha); err != nil {
		return errValidacion(msgFechaInvalida)
	}

	c.draft.FechaPedido = fecha
	return nil
}

// Total computes the running display total of the draft. Lines that do not
// parse yet contribute nothing.
func (c *Composer) Total() float64 {
	var total float64
	for _, item := range c.draft.Items {
		cantidad, errQty := strconv.Atoi(strings.TrimSpace(item.Cantidad))
		precio, errPrecio := strconv.ParseFloat(strings.TrimSpace(item.PrecioUnitario), 64)
		if errQty != nil || errPrecio != nil {
			continue
		}
		total += float64(cantidad) * precio
	}
	return total
}

// Submit validates the draft in order, short-circuiting on the first failure,
// and on success emits the normalized payload via the injected save callback.
// The draft is preserved whatever the outcome.
func (c *Composer) Submit(ctx context.Context) (*models.PedidoDTO, error) {
	dto, err := c.normalizar()
	if err != nil {
		return nil, err
	}

	if c.save != nil {
		if err := c.save(ctx, *dto); err != nil {
			return nil, err
		}
	}

	return dto, nil
}

func (c *Composer) normalizar() (*models.PedidoDTO, error) {
	if len(c.draft.Items) == 0 {
		return nil, errValidacion(msgSinArticulos)
	}

	for _, item := range c.draft.Items {
		if item.ArticuloID == "" || item.Cantidad == "" || item.PrecioUnitario == "" {
			return nil, errValidacion(msgItemIncompleto)
		}
	}

	clienteID, err := strconv.ParseInt(c.draft.ClienteID, 10, 64)
	if err != nil || clienteID <= 0 {
		return nil, errValidacion(msgClienteInvalido)
	}

	var sucursalID *int64
	if c.draft.SucursalID != "" {
		id, err := strconv.ParseInt(c.draft.SucursalID, 10, 64)
		if err != nil || id <= 0 {
			return nil, errValidacion(msgSucursalAjena)
		}
		sucursalID = &id
	}

	items := make([]models.PedidoItemDTO, 0, len(c.draft.Items))
	for _, item := range c.draft.Items {
		articuloID, err := strconv.ParseInt(item.ArticuloID, 10, 64)
		if err != nil || articuloID <= 0 {
			return nil, errValidacion(msgArticuloSinID)
		}

		cantidad, err := strconv.Atoi(item.Cantidad)
		if err != nil || cantidad <= 0 {
			return nil, errValidacion(msgCantidadMinima)
		}

		precio, err := strconv.ParseFloat(item.PrecioUnitario, 64)
		if err != nil || precio <= 0 {
			return nil, errValidacion(msgPrecioMinimo)
		}

		var observaciones *string
		if item.Observaciones != "" {
			obs := item.Observaciones
			observaciones = &obs
		}

		items = append(items, models.PedidoItemDTO{
			ArticuloID:     articuloID,
			Cantidad:       cantidad,
			PrecioUnitario: precio,
			Observaciones:  observaciones,
		})
	}

	estado := c.draft.Estado
	if !c.editing || estado == "" {
		estado = models.EstadoPendiente
	}

	return &models.PedidoDTO{
		ClienteID:   clienteID,
		SucursalID:  sucursalID,
		Estado:      estado,
		FechaPedido: c.draft.FechaPedido,
		Items:       items,
	}, nil
}

func (c *Composer) cliente() (models.Cliente, bool) {
	id, err := strconv.ParseInt(c.draft.ClienteID, 10, 64)
	if err != nil {
		return models.Cliente{}, false
	}
	for _, cliente := range c.clientes {
		if cliente.ID == id {
			return cliente, true
		}
	}
	return models.Cliente{}, false
}

func (c *Composer) sucursalDelCliente(id string) (models.Sucursal, bool) {
	sucursalID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.Sucursal{}, false
	}
	cliente, ok := c.cliente()
	if !ok {
		return models.Sucursal{}, false
	}
	return cliente.Sucursal(sucursalID)
}

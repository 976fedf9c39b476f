package pedidos

import (
	"strconv"

	"github.com/FranciscoAraya01/sistemaOficina-ft/internal/domain/models"
)

// ItemField names an editable field of an order line.
type ItemField string

const (
	FieldArticulo       ItemField = "articuloId"
	FieldCantidad       ItemField = "cantidad"
	FieldPrecioUnitario ItemField = "precioUnitario"
	FieldObservaciones  ItemField = "observaciones"
)

// AddItem appends a blank line with quantity preset to 1.
func (c *Composer) AddItem() {
	c.draft.Items = append(c.draft.Items, ItemDraft{Cantidad: "1"})
}

// RemoveItem deletes the line at the given position. Lines are addressed by
// position, so the remaining ones shift down. Out-of-range indexes are
// ignored.
func (c *Composer) RemoveItem(index int) {
	if index < 0 || index >= len(c.draft.Items) {
		return
	}
	c.draft.Items = append(c.draft.Items[:index], c.draft.Items[index+1:]...)
}

// UpdateItem replaces one field of the line at the given position. Selecting
// an article also overwrites the line's unit price with the article's current
// catalog price, discarding any manual edit made before the selection.
func (c *Composer) UpdateItem(index int, field ItemField, value string) {
	if index < 0 || index >= len(c.draft.Items) {
		return
	}

	item := &c.draft.Items[index]

	switch field {
	case FieldArticulo:
		item.ArticuloID = value
		if articulo, ok := c.articulo(value); ok {
			item.PrecioUnitario = strconv.FormatFloat(articulo.Precio, 'f', -1, 64)
		}
	case FieldCantidad:
		item.Cantidad = value
	case FieldPrecioUnitario:
		item.PrecioUnitario = value
	case FieldObservaciones:
		item.Observaciones = value
	}
}

// Items returns a copy of the current lines.
func (c *Composer) Items() []ItemDraft {
	return append([]ItemDraft(nil), c.draft.Items...)
}

func (c *Composer) articulo(id string) (models.Articulo, bool) {
	articuloID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return models.Articulo{}, false
	}
	for _, a := range c.articulos {
		if a.ID == articuloID {
			return a, true
		}
	}
	return models.Articulo{}, false
}

package models

// Articulo is a catalog product with a fixed category and a unit price.
type Articulo struct {
	ID        int64   `json:"id"`
	Nombre    string  `json:"nombre"`
	Categoria string  `json:"categoria"`
	Precio    float64 `json:"precio"`
}

// Categorias is the fixed set of product categories accepted by the catalog.
var Categorias = []string{
	"Desayunadores",
	"Comedores",
	"Camas y Camarotes",
	"Terrazas",
	"Bancos y Sillas",
	"Otros",
}

// CategoriaValida reports whether the given category is part of the fixed set.
func CategoriaValida(categoria string) bool {
	for _, c := range Categorias {
		if c == categoria {
			return true
		}
	}
	return false
}

// ArticuloDTO is the write payload for creating or updating a product.
type ArticuloDTO struct {
	Nombre    string  `json:"nombre"`
	Categoria string  `json:"categoria"`
	Precio    float64 `json:"precio"`
}

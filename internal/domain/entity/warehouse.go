package entity

// Warehouse representa un almacén, bodega o unidad de reparto.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

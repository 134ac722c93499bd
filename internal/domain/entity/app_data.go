package entity

// AppData es el snapshot completo del sistema: única fuente de verdad.
// Todas las colecciones son ordenadas; ventas, pedidos y traspasos van del más reciente al más antiguo.
type AppData struct {
	Products   []Product       `json:"products"`
	Warehouses []Warehouse     `json:"warehouses"`
	Inventory  []InventoryItem `json:"inventory"`
	Customers  []Customer      `json:"customers"`
	Sales      []Sale          `json:"sales"`
	Orders     []Order         `json:"orders"`
	Transfers  []Transfer      `json:"transfers"`
}

// Clone devuelve una copia profunda; mutar la copia nunca altera el original.
func (d AppData) Clone() AppData {
	out := AppData{
		Products:   cloneSlice(d.Products),
		Warehouses: cloneSlice(d.Warehouses),
		Inventory:  cloneSlice(d.Inventory),
		Customers:  cloneSlice(d.Customers),
		Sales:      make([]Sale, len(d.Sales)),
		Orders:     make([]Order, len(d.Orders)),
		Transfers:  cloneSlice(d.Transfers),
	}
	for i, s := range d.Sales {
		s.Items = cloneSlice(s.Items)
		out.Sales[i] = s
	}
	for i, o := range d.Orders {
		o.Items = cloneSlice(o.Items)
		out.Orders[i] = o
	}
	return out
}

// cloneSlice nunca devuelve nil: una colección vacía se persiste como [] y no como null.
func cloneSlice[T any](src []T) []T {
	out := make([]T, len(src))
	copy(out, src)
	return out
}

// ProductIndex devuelve la posición del producto o -1.
func (d AppData) ProductIndex(id string) int {
	for i := range d.Products {
		if d.Products[i].ID == id {
			return i
		}
	}
	return -1
}

// WarehouseIndex devuelve la posición del almacén o -1.
func (d AppData) WarehouseIndex(id string) int {
	for i := range d.Warehouses {
		if d.Warehouses[i].ID == id {
			return i
		}
	}
	return -1
}

// InventoryIndex devuelve la posición del registro (producto, almacén) o -1.
func (d AppData) InventoryIndex(productID, warehouseID string) int {
	for i := range d.Inventory {
		if d.Inventory[i].ProductID == productID && d.Inventory[i].WarehouseID == warehouseID {
			return i
		}
	}
	return -1
}

// CustomerIndex devuelve la posición del cliente o -1.
func (d AppData) CustomerIndex(id string) int {
	for i := range d.Customers {
		if d.Customers[i].ID == id {
			return i
		}
	}
	return -1
}

// SaleIndex devuelve la posición de la venta o -1.
func (d AppData) SaleIndex(id string) int {
	for i := range d.Sales {
		if d.Sales[i].ID == id {
			return i
		}
	}
	return -1
}

// OrderIndex devuelve la posición del pedido o -1.
func (d AppData) OrderIndex(id string) int {
	for i := range d.Orders {
		if d.Orders[i].ID == id {
			return i
		}
	}
	return -1
}

// TransferIndex devuelve la posición del traspaso o -1.
func (d AppData) TransferIndex(id string) int {
	for i := range d.Transfers {
		if d.Transfers[i].ID == id {
			return i
		}
	}
	return -1
}

// ProductByID busca un producto por ID.
func (d AppData) ProductByID(id string) (Product, bool) {
	if i := d.ProductIndex(id); i >= 0 {
		return d.Products[i], true
	}
	return Product{}, false
}

// WarehouseByID busca un almacén por ID.
func (d AppData) WarehouseByID(id string) (Warehouse, bool) {
	if i := d.WarehouseIndex(id); i >= 0 {
		return d.Warehouses[i], true
	}
	return Warehouse{}, false
}

// CustomerByID busca un cliente por ID.
func (d AppData) CustomerByID(id string) (Customer, bool) {
	if i := d.CustomerIndex(id); i >= 0 {
		return d.Customers[i], true
	}
	return Customer{}, false
}

// MissingInventoryPairs lista los pares del producto cartesiano sin registro de inventario.
func (d AppData) MissingInventoryPairs() []InventoryKey {
	have := make(map[InventoryKey]struct{}, len(d.Inventory))
	for _, it := range d.Inventory {
		have[it.Key()] = struct{}{}
	}
	var missing []InventoryKey
	for _, p := range d.Products {
		for _, w := range d.Warehouses {
			k := InventoryKey{ProductID: p.ID, WarehouseID: w.ID}
			if _, ok := have[k]; !ok {
				missing = append(missing, k)
			}
		}
	}
	return missing
}

// EnsureInventory agrega con cantidad 0 los pares (producto, almacén) faltantes.
// Se usa al cargar snapshots importados que no cumplen el invariante del producto cartesiano.
func (d *AppData) EnsureInventory() int {
	missing := d.MissingInventoryPairs()
	for _, k := range missing {
		d.Inventory = append(d.Inventory, InventoryItem{ProductID: k.ProductID, WarehouseID: k.WarehouseID})
	}
	return len(missing)
}

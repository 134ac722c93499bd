package entity

// InventoryItem es la existencia de un producto en un almacén.
// Existe exactamente un registro por cada par (producto, almacén).
type InventoryItem struct {
	ProductID   string `json:"productId"`
	WarehouseID string `json:"warehouseId"`
	Quantity    int64  `json:"quantity"`
}

// MaxQuantity es el tope de unidades que admite una partida, un traspaso o un ajuste.
const MaxQuantity int64 = 1_000_000_000

// InventoryKey identifica un InventoryItem.
type InventoryKey struct {
	ProductID   string
	WarehouseID string
}

// Key devuelve la llave compuesta del registro.
func (i InventoryItem) Key() InventoryKey {
	return InventoryKey{ProductID: i.ProductID, WarehouseID: i.WarehouseID}
}

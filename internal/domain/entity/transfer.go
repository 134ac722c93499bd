package entity

import (
	"fmt"
	"time"
)

// TransferStatus estado de un traspaso entre almacenes.
type TransferStatus string

const (
	TransferStatusEnRoute  TransferStatus = "En Camino"
	TransferStatusReceived TransferStatus = "Recibido"
)

// IsValid indica si el estado es conocido.
func (s TransferStatus) IsValid() bool {
	return s == TransferStatusEnRoute || s == TransferStatusReceived
}

// ParseTransferStatus convierte texto libre en TransferStatus.
func ParseTransferStatus(value string) (TransferStatus, error) {
	s := TransferStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("estado de traspaso inválido %q", value)
	}
	return s, nil
}

// Transfer mueve mercancía entre almacenes: se descuenta del origen al crearse
// y se acredita al destino solo al recibirse.
type Transfer struct {
	ID                     string         `json:"id"`
	Date                   time.Time      `json:"date"`
	OriginWarehouseID      string         `json:"originWarehouseId"`
	DestinationWarehouseID string         `json:"destinationWarehouseId"`
	ProductID              string         `json:"productId"`
	Quantity               int64          `json:"quantity"`
	Status                 TransferStatus `json:"status"`
}

// Package access implementa la compuerta de permisos de escritura por rol.
package access

import "github.com/jhoicas/feria-pos/internal/domain/entity"

// Operation tipo de operación mutante del núcleo de estado.
type Operation string

const (
	OpRecordSale      Operation = "record_sale"
	OpAdjustBalance   Operation = "adjust_balance"
	OpCreateOrder     Operation = "create_order"
	OpSetOrderStatus  Operation = "set_order_status"
	OpCreateTransfer  Operation = "create_transfer"
	OpReceiveTransfer Operation = "receive_transfer"
	OpAdjustInventory Operation = "adjust_inventory"
)

// Operations devuelve todas las operaciones mutantes.
func Operations() []Operation {
	return []Operation{
		OpRecordSale, OpAdjustBalance, OpCreateOrder, OpSetOrderStatus,
		OpCreateTransfer, OpReceiveTransfer, OpAdjustInventory,
	}
}

// CanWrite decide si el rol puede ejecutar la operación.
//   - ADMIN (auditor) es solo lectura.
//   - MASTER puede todo, incluido el ajuste manual de inventario.
//   - OPERATOR y PROMOTOR ejecutan las operaciones transaccionales, nunca el ajuste manual.
//
// Un rol desconocido se niega.
func CanWrite(role entity.Role, op Operation) bool {
	switch role {
	case entity.RoleMaster:
		return true
	case entity.RoleOperator, entity.RolePromoter:
		return op != OpAdjustInventory
	default:
		return false
	}
}

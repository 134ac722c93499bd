package state

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// AdjustCustomerBalance registra un abono: resta amount del saldo del cliente.
// El saldo puede quedar negativo (saldo a favor).
func AdjustCustomerBalance(snap entity.AppData, customerID string, amount decimal.Decimal, role entity.Role) (entity.AppData, error) {
	if err := Authorize(role, access.OpAdjustBalance); err != nil {
		return snap, err
	}
	if !amount.IsPositive() {
		return snap, fmt.Errorf("abonar saldo: %w: monto %s", domain.ErrInvalidInput, amount)
	}
	if snap.CustomerIndex(customerID) < 0 {
		return snap, fmt.Errorf("abonar saldo: %w: cliente %q", domain.ErrNotFound, customerID)
	}

	next := snap.Clone()
	c := &next.Customers[next.CustomerIndex(customerID)]
	c.Balance = c.Balance.Sub(amount)
	return next, nil
}

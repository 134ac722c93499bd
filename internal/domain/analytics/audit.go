package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// EventType tipo de movimiento en la bitácora.
type EventType string

const (
	EventSale     EventType = "VENTA"
	EventTransfer EventType = "TRASPASO"
	EventOrder    EventType = "PEDIDO"
)

// AuditEvent entrada de la bitácora recalculada desde las colecciones del snapshot.
// Total es nil para traspasos (no tienen impacto monetario).
type AuditEvent struct {
	ID     string
	Type   EventType
	Date   time.Time
	Status string
	Total  *decimal.Decimal
}

// AuditLog une ventas, traspasos y pedidos y los ordena del más reciente al más antiguo.
// Con fechas iguales se conserva el orden ventas, traspasos, pedidos y el de cada colección.
func AuditLog(d entity.AppData) []AuditEvent {
	events := make([]AuditEvent, 0, len(d.Sales)+len(d.Transfers)+len(d.Orders))
	for _, s := range d.Sales {
		total := s.Total
		events = append(events, AuditEvent{ID: s.ID, Type: EventSale, Date: s.Date, Status: string(s.PaymentMethod), Total: &total})
	}
	for _, t := range d.Transfers {
		events = append(events, AuditEvent{ID: t.ID, Type: EventTransfer, Date: t.Date, Status: string(t.Status)})
	}
	for _, o := range d.Orders {
		total := o.Total
		events = append(events, AuditEvent{ID: o.ID, Type: EventOrder, Date: o.Date, Status: string(o.Status), Total: &total})
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.After(events[j].Date) })
	return events
}

package analytics

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// CustomerUseCase padrón de clientes con búsqueda.
type CustomerUseCase struct {
	reader SnapshotReader
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(reader SnapshotReader) *CustomerUseCase {
	return &CustomerUseCase{reader: reader}
}

// Search filtra por nombre, encargado o zona, sin distinguir mayúsculas ni acentos.
// Una consulta vacía devuelve el padrón completo en su orden original.
func (uc *CustomerUseCase) Search(ctx context.Context, query string) ([]entity.Customer, error) {
	snap, err := read(ctx, uc.reader)
	if err != nil {
		return nil, err
	}
	needle := Fold(strings.TrimSpace(query))
	if needle == "" {
		return snap.Customers, nil
	}
	var out []entity.Customer
	for _, c := range snap.Customers {
		if strings.Contains(Fold(c.Name), needle) ||
			strings.Contains(Fold(c.Manager), needle) ||
			strings.Contains(Fold(c.Zone), needle) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Get un cliente por id.
func (uc *CustomerUseCase) Get(ctx context.Context, id string) (entity.Customer, error) {
	snap, err := read(ctx, uc.reader)
	if err != nil {
		return entity.Customer{}, err
	}
	c, ok := snap.CustomerByID(id)
	if !ok {
		return entity.Customer{}, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return c, nil
}

// Fold minúsculas sin marcas diacríticas ("Güera" -> "guera").
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

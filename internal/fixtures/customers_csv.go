package fixtures

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
)

// Columnas reconocidas del padrón de clientes. id y nombre_comercial son obligatorias.
const (
	colID        = "id"
	colZone      = "zona"
	colTradeName = "nombre_comercial"
	colLine      = "giro"
	colEmail     = "email"
	colPhone     = "telefono"
	colManager   = "encargado"
	colBalance   = "saldo"
)

// ParseCustomersCSV lee el padrón de clientes (con encabezado) y construye los clientes.
// Con latin1 el archivo se decodifica como ISO-8859-1 (exportaciones de hoja de cálculo en Windows).
// El nombre del cliente es su nombre comercial; sin columna saldo el saldo inicial es 0.
func ParseCustomersCSV(r io.Reader, latin1 bool) ([]entity.Customer, error) {
	if latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: padrón vacío", domain.ErrInvalidInput)
		}
		return nil, fmt.Errorf("leer encabezado: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	for _, required := range []string{colID, colTradeName} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("%w: falta la columna %q", domain.ErrInvalidInput, required)
		}
	}

	var (
		out  []entity.Customer
		seen = make(map[string]bool)
	)
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		field := func(name string) string {
			if i, ok := cols[name]; ok && i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		id := field(colID)
		if id == "" {
			return nil, fmt.Errorf("%w: línea %d sin id", domain.ErrInvalidInput, line)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: cliente %s repetido en línea %d", domain.ErrDuplicate, id, line)
		}
		seen[id] = true

		balance := decimal.Zero
		if raw := field(colBalance); raw != "" {
			balance, err = decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: saldo inválido en línea %d: %v", domain.ErrInvalidInput, line, err)
			}
		}
		trade := field(colTradeName)
		out = append(out, entity.Customer{
			ID:           id,
			Name:         trade,
			Zone:         field(colZone),
			Balance:      balance,
			TradeName:    trade,
			BusinessLine: field(colLine),
			Email:        field(colEmail),
			Phone:        field(colPhone),
			Manager:      field(colManager),
		})
	}
	return out, nil
}

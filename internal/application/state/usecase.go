// Package state es el contenedor de estado de la aplicación: posee el snapshot vigente, traduce
// peticiones a transacciones del núcleo y persiste cada cambio confirmado.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/feria-pos/internal/domain"
	"github.com/jhoicas/feria-pos/internal/domain/access"
	"github.com/jhoicas/feria-pos/internal/domain/entity"
	"github.com/jhoicas/feria-pos/internal/domain/repository"
	"github.com/jhoicas/feria-pos/internal/infrastructure/metrics"
	"github.com/jhoicas/feria-pos/pkg/logger"
)

// ErrNotLoaded el snapshot aún no se ha cargado del almacenamiento.
var ErrNotLoaded = errors.New("snapshot no cargado")

// Actor sesión que origina la operación.
type Actor struct {
	UserID string
	Role   entity.Role
}

// SeedFunc produce el snapshot inicial cuando la ranura está vacía.
type SeedFunc func(now time.Time) (entity.AppData, error)

// StateUseCase dueño único del snapshot. Todas las mutaciones pasan por aquí, serializadas con mu.
type StateUseCase struct {
	mu     sync.Mutex
	snap   entity.AppData
	loaded bool

	repo    repository.SnapshotRepository
	seed    SeedFunc
	log     *logger.Logger
	metrics *metrics.Recorder
	now     func() time.Time
	newID   func(prefix string) string
}

// Option configura el caso de uso.
type Option func(*StateUseCase)

// WithMetrics registra resultados de operaciones y guardados fallidos.
func WithMetrics(m *metrics.Recorder) Option { return func(uc *StateUseCase) { uc.metrics = m } }

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option { return func(uc *StateUseCase) { uc.now = now } }

// WithIDGenerator reemplaza el generador de ids (tests).
func WithIDGenerator(gen func(prefix string) string) Option {
	return func(uc *StateUseCase) { uc.newID = gen }
}

// NewStateUseCase construye el contenedor; hay que llamar Load antes de operar.
func NewStateUseCase(repo repository.SnapshotRepository, seed SeedFunc, log *logger.Logger, opts ...Option) *StateUseCase {
	uc := &StateUseCase{
		repo:  repo,
		seed:  seed,
		log:   log.Named("state"),
		now:   time.Now,
		newID: newTimeOrderedID,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// newTimeOrderedID PREFIJO-UUIDv7; cae a UUIDv4 si el reloj falla.
func newTimeOrderedID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "-" + id.String()
}

// Load lee la ranura. Vacía: siembra con los datos de arranque y guarda.
// Con datos: completa pares producto × bodega faltantes con existencia 0.
// Un blob ilegible es un error: no se sobrescribe.
func (uc *StateUseCase) Load(ctx context.Context) (entity.AppData, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	stored, err := uc.repo.Load(ctx)
	if err != nil {
		return entity.AppData{}, fmt.Errorf("cargar snapshot: %w", err)
	}
	if stored == nil {
		seeded, err := uc.seed(uc.now())
		if err != nil {
			return entity.AppData{}, fmt.Errorf("sembrar snapshot: %w", err)
		}
		uc.snap, uc.loaded = seeded, true
		uc.log.Info().Int("products", len(seeded.Products)).Int("customers", len(seeded.Customers)).
			Int("sales", len(seeded.Sales)).Msg("ranura vacía: snapshot sembrado")
		uc.persist(ctx)
		return uc.snap.Clone(), nil
	}

	if added := stored.EnsureInventory(); added > 0 {
		uc.log.Warn().Int("pairs", added).Msg("inventario incompleto: pares agregados con existencia 0")
	}
	uc.snap, uc.loaded = *stored, true
	uc.log.Info().Int("sales", len(stored.Sales)).Int("orders", len(stored.Orders)).
		Int("transfers", len(stored.Transfers)).Msg("snapshot cargado")
	return uc.snap.Clone(), nil
}

// Snapshot copia profunda del estado vigente.
func (uc *StateUseCase) Snapshot() (entity.AppData, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.loaded {
		return entity.AppData{}, ErrNotLoaded
	}
	return uc.snap.Clone(), nil
}

// Replace sustituye el snapshot completo y lo guarda de forma síncrona (reinicio de datos).
func (uc *StateUseCase) Replace(ctx context.Context, snap entity.AppData) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	snap = snap.Clone()
	snap.EnsureInventory()
	if err := uc.repo.Save(ctx, &snap); err != nil {
		return fmt.Errorf("guardar snapshot: %w", err)
	}
	uc.snap, uc.loaded = snap, true
	return nil
}

// apply corre una transacción del núcleo bajo el candado: confirma, persiste y registra.
// tx recibe el snapshot vigente y devuelve el nuevo y el id de la entidad afectada.
func (uc *StateUseCase) apply(ctx context.Context, actor Actor, op access.Operation,
	tx func(snap entity.AppData) (entity.AppData, string, error)) (entity.AppData, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !uc.loaded {
		return entity.AppData{}, ErrNotLoaded
	}
	next, entityID, err := tx(uc.snap)
	if err != nil {
		return entity.AppData{}, uc.reject(actor, op, err)
	}
	uc.metrics.Operation(string(op), domain.Code(nil))
	uc.snap = next
	uc.log.Info().Str("operation", string(op)).Str("role", string(actor.Role)).
		Str("user_id", actor.UserID).Str("entity_id", entityID).Msg("operación confirmada")
	uc.persist(ctx)
	return next.Clone(), nil
}

func (uc *StateUseCase) reject(actor Actor, op access.Operation, err error) error {
	code := domain.Code(err)
	uc.metrics.Operation(string(op), code)
	uc.log.Warn().Str("operation", string(op)).Str("role", string(actor.Role)).
		Str("code", code).Err(err).Msg("operación rechazada")
	return err
}

// persist guarda sin propagar el error: el estado en memoria queda confirmado aunque falle.
func (uc *StateUseCase) persist(ctx context.Context) {
	if err := uc.repo.Save(ctx, &uc.snap); err != nil {
		uc.metrics.SaveFailed()
		uc.log.Error().Err(err).Msg("no se pudo guardar el snapshot")
	}
}

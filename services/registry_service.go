package services

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"hotel-admin/backend"
	"hotel-admin/errors"
	"hotel-admin/models"
	"hotel-admin/services/logger"
	"hotel-admin/validator"
)

// RegistryService is the generic manage surface: one read/create/
// update/delete flow parameterized by entity kind. It keeps a single
// in-memory list for the currently selected kind and replaces it
// wholesale after every mutation; nothing is patched incrementally, so
// the view can never drift from the backend.
type RegistryService struct {
	backend *backend.Client
	log     logger.Logger

	mu         sync.Mutex
	current    models.Kind
	generation uint64
	records    []models.Record
}

func NewRegistryService(b *backend.Client, log logger.Logger) *RegistryService {
	if log == nil {
		log = logger.Nop{}
	}
	return &RegistryService{backend: b, log: log}
}

// Select makes kind the current selection and invalidates every fetch
// still in flight for the previous one. The returned generation lets a
// load recognize that the selection moved on while it was waiting.
func (s *RegistryService) Select(kind models.Kind) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = kind
	s.generation++
	return s.generation
}

// Records returns a snapshot of the current list.
func (s *RegistryService) Records() []models.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Record, len(s.records))
	copy(out, s.records)
	return out
}

// List fetches the collection for kind, drops null entries, and sorts
// ascending by the kind's key field. A backend or network failure is
// logged and yields an empty list, never an error: the view degrades
// to its empty state instead of crashing.
func (s *RegistryService) List(ctx context.Context, kind models.Kind) []models.Record {
	gen := s.Select(kind)

	recs, err := s.fetch(ctx, kind)
	if err != nil {
		s.log.Error("list %s: %v", kind, err)
		recs = []models.Record{}
	}
	sortRecords(kind, recs)

	// A response for a kind that is no longer selected must not
	// overwrite the store.
	s.mu.Lock()
	if s.generation == gen {
		s.records = recs
	}
	s.mu.Unlock()

	return recs
}

// Create validates kind-specific constraints before any network call,
// coerces the raw form values, posts the record, and reloads the
// collection. An invalid SSN fails here, pre-flight.
func (s *RegistryService) Create(ctx context.Context, kind models.Kind, fields map[string]string) error {
	if err := validator.ValidateCreate(kind, fields); err != nil {
		return err
	}
	payload, err := models.CreatePayload(kind, fields)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	var created map[string]any
	if err := s.backend.PostJSON(ctx, backend.CollectionPath(kind), payload, &created); err != nil {
		return err
	}
	s.List(ctx, kind)
	return nil
}

// Update re-submits the editable subset of one record: the display
// columns minus the key fields. The key itself is immutable and never
// part of the payload.
func (s *RegistryService) Update(ctx context.Context, kind models.Kind, key models.Key, fields map[string]string) error {
	if err := validator.ValidateKey(kind, key); err != nil {
		return err
	}
	payload, err := models.UpdatePayload(kind, fields)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), err)
	}
	var updated map[string]any
	if err := s.backend.PutJSON(ctx, backend.MemberPath(kind, key), payload, &updated); err != nil {
		return err
	}
	s.List(ctx, kind)
	return nil
}

// Delete removes one record after the surface has confirmed the action.
// A room key missing either composite part is a silent no-op, a guard
// against malformed row state rather than a reportable failure: the
// returned bool says whether a delete was actually issued.
func (s *RegistryService) Delete(ctx context.Context, kind models.Kind, key models.Key, confirmed bool) (bool, error) {
	if !confirmed {
		return false, errors.NewAppError(errors.ErrCodeValidation, errors.ErrNotConfirmed.Error(), errors.ErrNotConfirmed)
	}
	if kind == models.KindRoom && (key.ID == "" || key.HotelAddress == "") {
		s.log.Info("delete %s skipped: incomplete composite key", kind)
		return false, nil
	}
	if err := validator.ValidateKey(kind, key); err != nil {
		return false, err
	}
	if err := s.backend.Delete(ctx, backend.MemberPath(kind, key)); err != nil {
		return false, err
	}
	s.List(ctx, kind)
	return true, nil
}

func (s *RegistryService) fetch(ctx context.Context, kind models.Kind) ([]models.Record, error) {
	path := backend.CollectionPath(kind)
	switch kind {
	case models.KindHotel:
		return loadRecords[models.Hotel](ctx, s.backend, path)
	case models.KindRoom:
		return loadRecords[models.Room](ctx, s.backend, path)
	case models.KindCustomer:
		return loadRecords[models.Customer](ctx, s.backend, path)
	case models.KindEmployee:
		return loadRecords[models.Employee](ctx, s.backend, path)
	case models.KindBooking:
		return loadRecords[models.Booking](ctx, s.backend, path)
	case models.KindRenting:
		return loadRecords[models.Renting](ctx, s.backend, path)
	}
	return nil, errors.NewAppError(errors.ErrCodeValidation, "unknown entity kind "+string(kind), nil)
}

// loadRecords decodes a collection into pointers so partial backend
// payloads with null entries can be filtered out instead of decoded as
// zero records.
func loadRecords[T models.Record](ctx context.Context, c *backend.Client, path string) ([]models.Record, error) {
	var rows []*T
	if err := c.GetJSON(ctx, path, &rows); err != nil {
		return nil, err
	}
	out := make([]models.Record, 0, len(rows))
	for _, row := range rows {
		if row != nil {
			out = append(out, *row)
		}
	}
	return out, nil
}

// sortRecords orders purely for presentation: ascending by key field,
// numerically when the key is numeric, lexicographically otherwise.
func sortRecords(kind models.Kind, recs []models.Record) {
	schema, err := models.SchemaFor(kind)
	if err != nil {
		return
	}
	sort.SliceStable(recs, func(i, j int) bool {
		a := recs[i].RecordKey().ID
		b := recs[j].RecordKey().ID
		if schema.NumericKey {
			ai, _ := strconv.Atoi(a)
			bi, _ := strconv.Atoi(b)
			return ai < bi
		}
		return a < b
	})
}

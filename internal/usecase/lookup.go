package usecase

import (
	"context"
	"time"

	"safarsaga-backend/internal/data/entity"
	"safarsaga-backend/internal/data/repository"

	"github.com/google/uuid"
)

// LookupOutcome distinguishes a record that does not exist from a lookup that
// could not run. Callers decide per outcome instead of treating both as nil.
type LookupOutcome int

const (
	LookupFound LookupOutcome = iota
	LookupNotFound
	LookupFailed
)

type EventLookup struct {
	Outcome LookupOutcome
	Event   *entity.Event
	Err     error
}

// eventLookupTimeout bounds the secondary-reference fetch so a slow catalog
// store cannot stall a cancellation.
const eventLookupTimeout = 3 * time.Second

// ProbeEvent fetches a possibly-absent event with a bounded timeout. It never
// returns an error; failures are reported through the outcome so callers can
// degrade gracefully on a dangling reference.
func ProbeEvent(ctx context.Context, repo repository.EventRepository, id uuid.UUID) EventLookup {
	lookupCtx, cancel := context.WithTimeout(ctx, eventLookupTimeout)
	defer cancel()

	event, err := repo.FindByID(lookupCtx, id)
	if err != nil {
		return EventLookup{Outcome: LookupFailed, Err: err}
	}
	if event == nil {
		return EventLookup{Outcome: LookupNotFound}
	}
	return EventLookup{Outcome: LookupFound, Event: event}
}

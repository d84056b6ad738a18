package locker

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SlotLocker holds short-lived advisory locks on a booking slot so concurrent
// requests for the same (catalog ref, travel date) queue up before hitting the
// database. Correctness does not depend on it; the transactional check does.
type SlotLocker struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewSlotLocker(client *redis.Client, ttl time.Duration, log *zap.Logger) *SlotLocker {
	return &SlotLocker{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("component", "slot_locker")),
	}
}

func slotKey(refID uuid.UUID, travelDate time.Time) string {
	return fmt.Sprintf("slot_lock:%s:%s", refID.String(), travelDate.Format("2006-01-02"))
}

// Acquire returns false when another request already holds the slot.
func (l *SlotLocker) Acquire(ctx context.Context, refID uuid.UUID, travelDate time.Time) (bool, error) {
	ok, err := l.client.SetNX(ctx, slotKey(refID, travelDate), 1, l.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire slot lock: %w", err)
	}
	return ok, nil
}

func (l *SlotLocker) Release(ctx context.Context, refID uuid.UUID, travelDate time.Time) {
	if err := l.client.Del(ctx, slotKey(refID, travelDate)).Err(); err != nil {
		l.log.Warn("Failed to release slot lock",
			zap.Error(err),
			zap.String("ref_id", refID.String()),
		)
	}
}

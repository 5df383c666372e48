package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/drivehub/vehicle-rental/internal/model"
	"github.com/drivehub/vehicle-rental/internal/store"
	"github.com/drivehub/vehicle-rental/internal/utils"
)

// Recorder writes attributed audit entries.  Entries are immutable
// once written and read back newest-first by the underlying store.
type Recorder struct {
	store store.AuditStore
	now   func() time.Time
}

// NewRecorder returns a Recorder backed by the given audit store.
func NewRecorder(st store.AuditStore) *Recorder {
	return &Recorder{store: st, now: time.Now}
}

// Record appends one audit entry.  prev and next carry the full record
// before an edit and the submitted delta; both marshal to JSON and are
// nil for non-edit actions.
func (r *Recorder) Record(ctx context.Context, entityType, entityID, action string, actor Actor, details string, prev, next any) error {
	ts := r.now()
	// A random suffix keeps ids unique when two mutations land in the
	// same nanosecond, or when several processes share one table.
	sfx, err := utils.RandomHex(4)
	if err != nil {
		return err
	}
	e := &model.AuditEntry{
		ID:         strconv.FormatInt(ts.UnixNano(), 10) + "-" + sfx,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		AdminID:    actor.ID,
		AdminName:  actor.Name,
		Timestamp:  ts,
		Details:    details,
	}
	if prev != nil {
		if e.PreviousData, err = json.Marshal(prev); err != nil {
			return err
		}
	}
	if next != nil {
		if e.NewData, err = json.Marshal(next); err != nil {
			return err
		}
	}
	return r.store.Insert(ctx, e)
}

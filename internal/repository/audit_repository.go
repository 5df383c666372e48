package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/drivehub/vehicle-rental/internal/model"
)

// AuditRepo persists the audit trail in the 'audit_log' table.  Rows
// are insert-only; ListAll orders by timestamp descending so readers
// always see the newest entry first, matching the in-memory store.
// It satisfies store.AuditStore.
type AuditRepo struct{ db *sql.DB }

// NewAuditRepo returns an AuditRepo bound to the given database.
func NewAuditRepo(db *sql.DB) *AuditRepo { return &AuditRepo{db: db} }

// ListAll returns the full audit trail, newest first.
func (r *AuditRepo) ListAll(ctx context.Context) ([]model.AuditEntry, error) {
	const q = `SELECT id, entity_type, entity_id, action, admin_id, admin_name,
	                  timestamp, details, previous_data, new_data
	           FROM audit_log ORDER BY timestamp DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.AuditEntry, 0)
	for rows.Next() {
		var (
			e          model.AuditEntry
			prev, next sql.NullString
		)
		if err := rows.Scan(
			&e.ID, &e.EntityType, &e.EntityID, &e.Action, &e.AdminID, &e.AdminName,
			&e.Timestamp, &e.Details, &prev, &next); err != nil {
			return nil, err
		}
		if prev.Valid {
			e.PreviousData = json.RawMessage(prev.String)
		}
		if next.Valid {
			e.NewData = json.RawMessage(next.String)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// Insert appends one audit entry.  Entries are never updated or
// deleted afterwards.
func (r *AuditRepo) Insert(ctx context.Context, e *model.AuditEntry) error {
	var prev, next any
	if e.PreviousData != nil {
		prev = string(e.PreviousData)
	}
	if e.NewData != nil {
		next = string(e.NewData)
	}
	const q = `INSERT INTO audit_log (id, entity_type, entity_id, action, admin_id,
	           admin_name, timestamp, details, previous_data, new_data)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		e.ID, e.EntityType, e.EntityID, e.Action, e.AdminID,
		e.AdminName, e.Timestamp, e.Details, prev, next)
	return err
}

package model

import (
	"encoding/json"
	"time"
)

// Entity types an audit entry can refer to.
const (
	AuditEntityVehicle = "vehicle"
	AuditEntityBooking = "booking"
)

// Audit actions.  Exactly one entry is written per mutating admin
// operation; entries are never updated or deleted afterwards.
const (
	AuditActionApprove = "approve"
	AuditActionReject  = "reject"
	AuditActionEdit    = "edit"
	AuditActionCreate  = "create"
)

// AuditEntry is one immutable record of an attributed admin action.
// Entries are stored newest-first so that reads return reverse
// chronological order without sorting.  PreviousData and NewData are
// opaque JSON snapshots populated for edit actions only.
//
// Fields:
//  ID           – UnixNano decimal string plus a random suffix.
//  EntityType   – "vehicle" or "booking".
//  EntityID     – identifier of the affected record.
//  Action       – one of the action constants above.
//  AdminID      – identifier of the acting admin.
//  AdminName    – display name of the acting admin.
//  Timestamp    – when the action took place.
//  Details      – human-readable summary of the action.
//  PreviousData – full record before an edit (nil otherwise).
//  NewData      – submitted delta of an edit (nil otherwise).
type AuditEntry struct {
	ID           string          `json:"id"`
	EntityType   string          `json:"entityType"`
	EntityID     string          `json:"entityId"`
	Action       string          `json:"action"`
	AdminID      string          `json:"adminId"`
	AdminName    string          `json:"adminName"`
	Timestamp    time.Time       `json:"timestamp"`
	Details      string          `json:"details"`
	PreviousData json.RawMessage `json:"previousData,omitempty"`
	NewData      json.RawMessage `json:"newData,omitempty"`
}

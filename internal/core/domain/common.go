package domain

import "time"

// SystemActor is recorded as the author of changes made by automation rather than a person.
const SystemActor = "system"

// AuditFields records who created and last changed a mutable record.
// Actors are JWT subjects, or SystemActor.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// NewAuditFields stamps a record created by actor at the given instant.
func NewAuditFields(actor string, at time.Time) AuditFields {
	at = at.UTC()
	return AuditFields{CreatedAt: at, CreatedBy: actor, LastUpdatedAt: at, LastUpdatedBy: actor}
}

// Touch records a change by actor, leaving the creation stamp alone.
func (a *AuditFields) Touch(actor string, at time.Time) {
	a.LastUpdatedAt = at.UTC()
	a.LastUpdatedBy = actor
}

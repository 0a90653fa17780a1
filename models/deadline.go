package models

import "time"

// Deadline kind constants
const (
	DeadlineKindFiling   = "FILING"
	DeadlineKindResponse = "RESPONSE"
	DeadlineKindOrder    = "ORDER"
	DeadlineKindHearing  = "HEARING"
	DeadlineKindOther    = "OTHER"
)

// Deadline priority constants
const (
	PriorityHigh   = "HIGH"
	PriorityMedium = "MEDIUM"
	PriorityLow    = "LOW"
)

// Deadline status constants. OVERDUE is never set automatically; see IsOverdue.
const (
	DeadlineStatusPending = "PENDING"
	DeadlineStatusDone    = "DONE"
	DeadlineStatusOverdue = "OVERDUE"
)

// Deadline represents a procedural due date (plazo) tied to a case
type Deadline struct {
	ID          string    `json:"id"`
	CaseID      string    `json:"case_id"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	DueAt       time.Time `json:"due_at"`
	AllDay      bool      `json:"all_day"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DeadlineInput holds the fields supplied when creating a deadline
type DeadlineInput struct {
	CaseID      string    `json:"case_id" validate:"required"`
	Kind        string    `json:"kind" validate:"required,oneof=FILING RESPONSE ORDER HEARING OTHER"`
	Title       string    `json:"title" validate:"required,min=1,max=100"`
	Description *string   `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at" validate:"required"`
	DueAt       time.Time `json:"due_at" validate:"required,gtefield=StartsAt"`
	AllDay      bool      `json:"all_day"`
	Priority    string    `json:"priority" validate:"required,oneof=HIGH MEDIUM LOW"`
	Status      string    `json:"status" validate:"omitempty,oneof=PENDING DONE OVERDUE"`
}

// DeadlinePatch lists the deadline fields that may change on update
type DeadlinePatch struct {
	CaseID      *string    `json:"case_id,omitempty"`
	Kind        *string    `json:"kind,omitempty" validate:"omitempty,oneof=FILING RESPONSE ORDER HEARING OTHER"`
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string    `json:"description,omitempty"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	AllDay      *bool      `json:"all_day,omitempty"`
	Priority    *string    `json:"priority,omitempty" validate:"omitempty,oneof=HIGH MEDIUM LOW"`
	Status      *string    `json:"status,omitempty" validate:"omitempty,oneof=PENDING DONE OVERDUE"`
}

// NewDeadline builds a deadline from its input, defaulting the status to PENDING.
// StartsAt and DueAt are stored in UTC.
func NewDeadline(in DeadlineInput) Deadline {
	status := in.Status
	if status == "" {
		status = DeadlineStatusPending
	}
	return Deadline{
		CaseID:      in.CaseID,
		Kind:        in.Kind,
		Title:       in.Title,
		Description: cloneString(in.Description),
		StartsAt:    in.StartsAt.UTC(),
		DueAt:       in.DueAt.UTC(),
		AllDay:      in.AllDay,
		Priority:    in.Priority,
		Status:      status,
	}
}

// Apply merges the non-nil patch fields into d
func (p DeadlinePatch) Apply(d *Deadline) {
	if p.CaseID != nil {
		d.CaseID = *p.CaseID
	}
	if p.Kind != nil {
		d.Kind = *p.Kind
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = cloneString(p.Description)
	}
	if p.StartsAt != nil {
		d.StartsAt = p.StartsAt.UTC()
	}
	if p.DueAt != nil {
		d.DueAt = p.DueAt.UTC()
	}
	if p.AllDay != nil {
		d.AllDay = *p.AllDay
	}
	if p.Priority != nil {
		d.Priority = *p.Priority
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
}

// Clone returns a deep copy of the deadline
func (d Deadline) Clone() Deadline {
	d.Description = cloneString(d.Description)
	return d
}

// EntityID returns the deadline identifier
func (d Deadline) EntityID() string { return d.ID }

// IsDone reports whether the deadline was completed
func (d *Deadline) IsDone() bool {
	return d.Status == DeadlineStatusDone
}

// IsOverdue reports whether the deadline is past due at now. A DONE deadline is never overdue.
func (d *Deadline) IsOverdue(now time.Time) bool {
	if d.IsDone() {
		return false
	}
	return d.Status == DeadlineStatusOverdue || d.DueAt.Before(now)
}

// PriorityRank orders priorities from most to least urgent
func PriorityRank(priority string) int {
	switch priority {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

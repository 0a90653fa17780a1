package models

import "time"

// Hearing kind constants
const (
	HearingKindPreliminary  = "PRELIMINARY"
	HearingKindMediation    = "MEDIATION"
	HearingKindConciliation = "CONCILIATION"
	HearingKindViewing      = "VIEWING"
	HearingKindJudgment     = "JUDGMENT"
	HearingKindOther        = "OTHER"
)

// Hearing status constants
const (
	HearingStatusScheduled  = "SCHEDULED"
	HearingStatusInProgress = "IN_PROGRESS"
	HearingStatusHeld       = "HELD"
	HearingStatusCancelled  = "CANCELLED"
	HearingStatusPostponed  = "POSTPONED"
)

// Hearing represents a scheduled court event (audiencia) tied to a case.
// Date is YYYY-MM-DD and Time is HH:MM, as entered in the scheduling form.
type Hearing struct {
	ID                    string    `json:"id"`
	CaseID                string    `json:"case_id"`
	Title                 string    `json:"title"`
	Description           *string   `json:"description,omitempty"`
	Date                  string    `json:"date"`
	Time                  string    `json:"time"`
	DurationMinutes       int       `json:"duration_minutes"`
	Kind                  string    `json:"kind"`
	Status                string    `json:"status"`
	Court                 *string   `json:"court,omitempty"`
	Room                  *string   `json:"room,omitempty"`
	Judge                 *string   `json:"judge,omitempty"`
	Location              *string   `json:"location,omitempty"`
	Notes                 *string   `json:"notes,omitempty"`
	ReminderMinutesBefore *int      `json:"reminder_minutes_before,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// HearingInput holds the fields supplied when scheduling a hearing
type HearingInput struct {
	CaseID                string  `json:"case_id" validate:"required"`
	Title                 string  `json:"title" validate:"required,min=1,max=100"`
	Description           *string `json:"description,omitempty"`
	Date                  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time                  string  `json:"time" validate:"required,datetime=15:04"`
	DurationMinutes       int     `json:"duration_minutes" validate:"gte=0"`
	Kind                  string  `json:"kind" validate:"required,oneof=PRELIMINARY MEDIATION CONCILIATION VIEWING JUDGMENT OTHER"`
	Status                string  `json:"status" validate:"required,oneof=SCHEDULED IN_PROGRESS HELD CANCELLED POSTPONED"`
	Court                 *string `json:"court,omitempty"`
	Room                  *string `json:"room,omitempty"`
	Judge                 *string `json:"judge,omitempty"`
	Location              *string `json:"location,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
	ReminderMinutesBefore *int    `json:"reminder_minutes_before,omitempty" validate:"omitempty,gte=0"`
}

// HearingPatch lists the hearing fields that may change on update
type HearingPatch struct {
	CaseID                *string `json:"case_id,omitempty"`
	Title                 *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description           *string `json:"description,omitempty"`
	Date                  *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time                  *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	DurationMinutes       *int    `json:"duration_minutes,omitempty" validate:"omitempty,gte=0"`
	Kind                  *string `json:"kind,omitempty" validate:"omitempty,oneof=PRELIMINARY MEDIATION CONCILIATION VIEWING JUDGMENT OTHER"`
	Status                *string `json:"status,omitempty" validate:"omitempty,oneof=SCHEDULED IN_PROGRESS HELD CANCELLED POSTPONED"`
	Court                 *string `json:"court,omitempty"`
	Room                  *string `json:"room,omitempty"`
	Judge                 *string `json:"judge,omitempty"`
	Location              *string `json:"location,omitempty"`
	Notes                 *string `json:"notes,omitempty"`
	ReminderMinutesBefore *int    `json:"reminder_minutes_before,omitempty" validate:"omitempty,gte=0"`
}

// NewHearing builds a hearing from its input
func NewHearing(in HearingInput) Hearing {
	return Hearing{
		CaseID:                in.CaseID,
		Title:                 in.Title,
		Description:           cloneString(in.Description),
		Date:                  in.Date,
		Time:                  in.Time,
		DurationMinutes:       in.DurationMinutes,
		Kind:                  in.Kind,
		Status:                in.Status,
		Court:                 cloneString(in.Court),
		Room:                  cloneString(in.Room),
		Judge:                 cloneString(in.Judge),
		Location:              cloneString(in.Location),
		Notes:                 cloneString(in.Notes),
		ReminderMinutesBefore: cloneInt(in.ReminderMinutesBefore),
	}
}

// Apply merges the non-nil patch fields into h
func (p HearingPatch) Apply(h *Hearing) {
	if p.CaseID != nil {
		h.CaseID = *p.CaseID
	}
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Description != nil {
		h.Description = cloneString(p.Description)
	}
	if p.Date != nil {
		h.Date = *p.Date
	}
	if p.Time != nil {
		h.Time = *p.Time
	}
	if p.DurationMinutes != nil {
		h.DurationMinutes = *p.DurationMinutes
	}
	if p.Kind != nil {
		h.Kind = *p.Kind
	}
	if p.Status != nil {
		h.Status = *p.Status
	}
	if p.Court != nil {
		h.Court = cloneString(p.Court)
	}
	if p.Room != nil {
		h.Room = cloneString(p.Room)
	}
	if p.Judge != nil {
		h.Judge = cloneString(p.Judge)
	}
	if p.Location != nil {
		h.Location = cloneString(p.Location)
	}
	if p.Notes != nil {
		h.Notes = cloneString(p.Notes)
	}
	if p.ReminderMinutesBefore != nil {
		h.ReminderMinutesBefore = cloneInt(p.ReminderMinutesBefore)
	}
}

// Clone returns a deep copy of the hearing
func (h Hearing) Clone() Hearing {
	h.Description = cloneString(h.Description)
	h.Court = cloneString(h.Court)
	h.Room = cloneString(h.Room)
	h.Judge = cloneString(h.Judge)
	h.Location = cloneString(h.Location)
	h.Notes = cloneString(h.Notes)
	h.ReminderMinutesBefore = cloneInt(h.ReminderMinutesBefore)
	return h
}

// EntityID returns the hearing identifier
func (h Hearing) EntityID() string { return h.ID }

// StartsAt combines Date and Time in loc. ok is false when either part does not parse.
func (h *Hearing) StartsAt(loc *time.Location) (t time.Time, ok bool) {
	clock := h.Time
	if clock == "" {
		clock = "00:00"
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", h.Date+" "+clock, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

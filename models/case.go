package models

import (
	"regexp"
	"time"
)

// Case status constants
const (
	CaseStatusOpen       = "OPEN"
	CaseStatusInProgress = "IN_PROGRESS"
	CaseStatusClosed     = "CLOSED"
)

// Jurisdiction area constants (fuero)
const (
	AreaLabor      = "LABOR"
	AreaCivil      = "CIVIL"
	AreaCommercial = "COMMERCIAL"
	AreaCriminal   = "CRIMINAL"
	AreaFamily     = "FAMILY"
	AreaOther      = "OTHER"
)

// fileNumberPattern matches the court file number format, e.g. 12345/2024
var fileNumberPattern = regexp.MustCompile(`^\d+/\d{4}$`)

// Case represents a legal case file (expediente)
type Case struct {
	ID               string    `json:"id"`
	FileNumber       string    `json:"file_number"`
	Caption          string    `json:"caption"`
	JurisdictionArea string    `json:"jurisdiction_area"`
	Court            *string   `json:"court,omitempty"`
	Jurisdiction     *string   `json:"jurisdiction,omitempty"`
	Status           string    `json:"status"`
	ClientID         string    `json:"client_id"`
	OwnerIDs         []string  `json:"owner_ids"`
	Notes            *string   `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CaseInput holds the fields supplied when creating a case
type CaseInput struct {
	FileNumber       string   `json:"file_number" validate:"required,file_number"`
	Caption          string   `json:"caption" validate:"required,min=3,max=120"`
	JurisdictionArea string   `json:"jurisdiction_area" validate:"required,oneof=LABOR CIVIL COMMERCIAL CRIMINAL FAMILY OTHER"`
	Court            *string  `json:"court,omitempty"`
	Jurisdiction     *string  `json:"jurisdiction,omitempty"`
	Status           string   `json:"status" validate:"required,oneof=OPEN IN_PROGRESS CLOSED"`
	ClientID         string   `json:"client_id" validate:"required"`
	OwnerIDs         []string `json:"owner_ids" validate:"required,min=1,dive,required"`
	Notes            *string  `json:"notes,omitempty"`
}

// CasePatch lists the case fields that may change on update. Nil fields are left untouched.
type CasePatch struct {
	FileNumber       *string  `json:"file_number,omitempty" validate:"omitempty,file_number"`
	Caption          *string  `json:"caption,omitempty" validate:"omitempty,min=3,max=120"`
	JurisdictionArea *string  `json:"jurisdiction_area,omitempty" validate:"omitempty,oneof=LABOR CIVIL COMMERCIAL CRIMINAL FAMILY OTHER"`
	Court            *string  `json:"court,omitempty"`
	Jurisdiction     *string  `json:"jurisdiction,omitempty"`
	Status           *string  `json:"status,omitempty" validate:"omitempty,oneof=OPEN IN_PROGRESS CLOSED"`
	ClientID         *string  `json:"client_id,omitempty"`
	OwnerIDs         []string `json:"owner_ids,omitempty" validate:"omitempty,min=1,dive,required"`
	Notes            *string  `json:"notes,omitempty"`
}

// NewCase builds a case from its input. Identity and timestamps are assigned by the repository.
func NewCase(in CaseInput) Case {
	return Case{
		FileNumber:       in.FileNumber,
		Caption:          in.Caption,
		JurisdictionArea: in.JurisdictionArea,
		Court:            cloneString(in.Court),
		Jurisdiction:     cloneString(in.Jurisdiction),
		Status:           in.Status,
		ClientID:         in.ClientID,
		OwnerIDs:         cloneStrings(in.OwnerIDs),
		Notes:            cloneString(in.Notes),
	}
}

// Apply merges the non-nil patch fields into c
func (p CasePatch) Apply(c *Case) {
	if p.FileNumber != nil {
		c.FileNumber = *p.FileNumber
	}
	if p.Caption != nil {
		c.Caption = *p.Caption
	}
	if p.JurisdictionArea != nil {
		c.JurisdictionArea = *p.JurisdictionArea
	}
	if p.Court != nil {
		c.Court = cloneString(p.Court)
	}
	if p.Jurisdiction != nil {
		c.Jurisdiction = cloneString(p.Jurisdiction)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.ClientID != nil {
		c.ClientID = *p.ClientID
	}
	if p.OwnerIDs != nil {
		c.OwnerIDs = cloneStrings(p.OwnerIDs)
	}
	if p.Notes != nil {
		c.Notes = cloneString(p.Notes)
	}
}

// Clone returns a deep copy of the case
func (c Case) Clone() Case {
	c.Court = cloneString(c.Court)
	c.Jurisdiction = cloneString(c.Jurisdiction)
	c.OwnerIDs = cloneStrings(c.OwnerIDs)
	c.Notes = cloneString(c.Notes)
	return c
}

// EntityID returns the case identifier
func (c Case) EntityID() string { return c.ID }

// IsValidFileNumber checks the digits/4-digit-year format
func IsValidFileNumber(number string) bool {
	return fileNumberPattern.MatchString(number)
}

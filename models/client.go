package models

import "time"

// Client kind constants
const (
	ClientKindPerson       = "PERSON"
	ClientKindOrganization = "ORGANIZATION"
)

// Client represents a person or organization represented by the firm
type Client struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Name       string    `json:"name"`
	DocumentID *string   `json:"document_id,omitempty"`
	Email      *string   `json:"email,omitempty"`
	Phone      *string   `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ClientInput holds the fields supplied when creating a client
type ClientInput struct {
	Kind       string  `json:"kind" validate:"required,oneof=PERSON ORGANIZATION"`
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	DocumentID *string `json:"document_id,omitempty" validate:"required,min=1,max=20"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
}

// ClientPatch lists the client fields that may change on update
type ClientPatch struct {
	Kind       *string `json:"kind,omitempty" validate:"omitempty,oneof=PERSON ORGANIZATION"`
	Name       *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	DocumentID *string `json:"document_id,omitempty" validate:"omitempty,min=1,max=20"`
	Email      *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone      *string `json:"phone,omitempty"`
}

// NewClient builds a client from its input
func NewClient(in ClientInput) Client {
	return Client{
		Kind:       in.Kind,
		Name:       in.Name,
		DocumentID: cloneString(in.DocumentID),
		Email:      cloneString(in.Email),
		Phone:      cloneString(in.Phone),
	}
}

// Apply merges the non-nil patch fields into c
func (p ClientPatch) Apply(c *Client) {
	if p.Kind != nil {
		c.Kind = *p.Kind
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.DocumentID != nil {
		c.DocumentID = cloneString(p.DocumentID)
	}
	if p.Email != nil {
		c.Email = cloneString(p.Email)
	}
	if p.Phone != nil {
		c.Phone = cloneString(p.Phone)
	}
}

// Clone returns a deep copy of the client
func (c Client) Clone() Client {
	c.DocumentID = cloneString(c.DocumentID)
	c.Email = cloneString(c.Email)
	c.Phone = cloneString(c.Phone)
	return c
}

// EntityID returns the client identifier
func (c Client) EntityID() string { return c.ID }

package models

// Dataset is the whole persisted document. It is always written and read as one unit.
type Dataset struct {
	Version   string     `json:"version"`
	Clients   []Client   `json:"clients"`
	Cases     []Case     `json:"cases"`
	Deadlines []Deadline `json:"deadlines"`
	Hearings  []Hearing  `json:"hearings"`
	Fees      []Fee      `json:"fees"`
	Invoices  []Invoice  `json:"invoices"`
	Users     []User     `json:"users"`
}

// EmptyDataset returns a dataset with every collection initialised and empty
func EmptyDataset() Dataset {
	return Dataset{
		Clients:   []Client{},
		Cases:     []Case{},
		Deadlines: []Deadline{},
		Hearings:  []Hearing{},
		Fees:      []Fee{},
		Invoices:  []Invoice{},
		Users:     []User{},
	}
}

// Normalize replaces nil collections with empty ones so a partially shaped document still loads
func (d *Dataset) Normalize() {
	if d.Clients == nil {
		d.Clients = []Client{}
	}
	if d.Cases == nil {
		d.Cases = []Case{}
	}
	if d.Deadlines == nil {
		d.Deadlines = []Deadline{}
	}
	if d.Hearings == nil {
		d.Hearings = []Hearing{}
	}
	if d.Fees == nil {
		d.Fees = []Fee{}
	}
	if d.Invoices == nil {
		d.Invoices = []Invoice{}
	}
	if d.Users == nil {
		d.Users = []User{}
	}
}

// Clone returns a deep copy of the dataset
func (d Dataset) Clone() Dataset {
	return Dataset{
		Version:   d.Version,
		Clients:   CloneAll(d.Clients),
		Cases:     CloneAll(d.Cases),
		Deadlines: CloneAll(d.Deadlines),
		Hearings:  CloneAll(d.Hearings),
		Fees:      CloneAll(d.Fees),
		Invoices:  CloneAll(d.Invoices),
		Users:     CloneAll(d.Users),
	}
}

// Entity is implemented by every record kept in the dataset
type Entity[T any] interface {
	EntityID() string
	Clone() T
}

// CloneAll deep-copies a collection, never returning nil
func CloneAll[T Entity[T]](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

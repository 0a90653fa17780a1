package repository

import (
	"context"

	"expedientes_app_go/models"
)

// ListClients returns a copy of every client in collection order
func (r *Repository) ListClients(ctx context.Context) []models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()
	return models.CloneAll(r.data.Clients)
}

// GetClient returns the client with id, or false when it does not exist
func (r *Repository) GetClient(ctx context.Context, id string) (models.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return getByID(r.data.Clients, id)
}

// CreateClient stores a new client and returns it
func (r *Repository) CreateClient(ctx context.Context, in models.ClientInput) models.Client {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := models.NewClient(in)
	id, now := r.stamp()
	c.ID = id
	c.CreatedAt = now

	r.data.Clients = append(r.data.Clients, c)
	r.persist(ctx)
	return c.Clone()
}

// UpdateClient merges patch into the stored client. It returns false, without persisting, for an unknown id.
func (r *Repository) UpdateClient(ctx context.Context, id string, patch models.ClientPatch) (models.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := findIndex(r.data.Clients, id)
	if i < 0 {
		return models.Client{}, false
	}
	patch.Apply(&r.data.Clients[i])
	r.persist(ctx)
	return r.data.Clients[i].Clone(), true
}

// DeleteClient removes the client. Deleting an unknown id returns false and does not persist.
func (r *Repository) DeleteClient(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rest, ok := removeByID(r.data.Clients, id)
	if !ok {
		return false
	}
	r.data.Clients = rest
	r.persist(ctx)
	return true
}

// FindClientByDocument returns the first client whose document id equals document
func (r *Repository) FindClientByDocument(ctx context.Context, document string) (models.Client, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.data.Clients {
		if models.StringValue(r.data.Clients[i].DocumentID) == document {
			return r.data.Clients[i].Clone(), true
		}
	}
	return models.Client{}, false
}

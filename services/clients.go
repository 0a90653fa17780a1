package services

import (
	"context"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
)

type ClientService struct{ *base }

func clientOp(action string) Op { return Op{Entity: "clients", Action: action} }

// List returns clients in collection order
func (s *ClientService) List(ctx context.Context, f query.ClientFilter) ([]models.Client, error) {
	return run(ctx, s.base, clientOp(ActionList), func() []models.Client {
		return query.FilterClients(s.repo.ListClients(ctx), f)
	})
}

func (s *ClientService) ListPage(ctx context.Context, f query.ClientFilter, page, size int) (query.Page[models.Client], error) {
	return run(ctx, s.base, clientOp(ActionList), func() query.Page[models.Client] {
		return query.Paginate(query.FilterClients(s.repo.ListClients(ctx), f), page, size)
	})
}

func (s *ClientService) Get(ctx context.Context, id string) (models.Client, bool, error) {
	return runFound(ctx, s.base, clientOp(ActionGet), func() (models.Client, bool) {
		return s.repo.GetClient(ctx, id)
	})
}

func (s *ClientService) Create(ctx context.Context, in models.ClientInput) (models.Client, error) {
	return run(ctx, s.base, clientOp(ActionCreate), func() models.Client {
		return s.repo.CreateClient(ctx, in)
	})
}

func (s *ClientService) Update(ctx context.Context, id string, patch models.ClientPatch) (models.Client, bool, error) {
	return runFound(ctx, s.base, clientOp(ActionUpdate), func() (models.Client, bool) {
		return s.repo.UpdateClient(ctx, id, patch)
	})
}

// Delete removes the client only. Cases, fees and invoices keep the dangling client id.
func (s *ClientService) Delete(ctx context.Context, id string) (bool, error) {
	return run(ctx, s.base, clientOp(ActionDelete), func() bool {
		return s.repo.DeleteClient(ctx, id)
	})
}

func (s *ClientService) Search(ctx context.Context, q string) ([]models.Client, error) {
	return run(ctx, s.base, clientOp(ActionSearch), func() []models.Client {
		return query.FilterClients(s.repo.ListClients(ctx), query.ClientFilter{Search: q})
	})
}

package services

import (
	"context"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
)

type CaseService struct{ *base }

func caseOp(action string) Op { return Op{Entity: "cases", Action: action} }

// List returns the cases matching f sorted by o. Zero values select the default order.
func (s *CaseService) List(ctx context.Context, f query.CaseFilter, o query.Order) ([]models.Case, error) {
	return run(ctx, s.base, caseOp(ActionList), func() []models.Case {
		return query.SortCases(query.FilterCases(s.repo.ListCases(ctx), f), o)
	})
}

// ListPage is List sliced to one page
func (s *CaseService) ListPage(ctx context.Context, f query.CaseFilter, o query.Order, page, size int) (query.Page[models.Case], error) {
	return run(ctx, s.base, caseOp(ActionList), func() query.Page[models.Case] {
		sorted := query.SortCases(query.FilterCases(s.repo.ListCases(ctx), f), o)
		return query.Paginate(sorted, page, size)
	})
}

func (s *CaseService) Get(ctx context.Context, id string) (models.Case, bool, error) {
	return runFound(ctx, s.base, caseOp(ActionGet), func() (models.Case, bool) {
		return s.repo.GetCase(ctx, id)
	})
}

func (s *CaseService) Create(ctx context.Context, in models.CaseInput) (models.Case, error) {
	return run(ctx, s.base, caseOp(ActionCreate), func() models.Case {
		return s.repo.CreateCase(ctx, in)
	})
}

func (s *CaseService) Update(ctx context.Context, id string, patch models.CasePatch) (models.Case, bool, error) {
	return runFound(ctx, s.base, caseOp(ActionUpdate), func() (models.Case, bool) {
		return s.repo.UpdateCase(ctx, id, patch)
	})
}

func (s *CaseService) Delete(ctx context.Context, id string) (bool, error) {
	return run(ctx, s.base, caseOp(ActionDelete), func() bool {
		return s.repo.DeleteCase(ctx, id)
	})
}

// Search matches file number, caption and client id in collection order
func (s *CaseService) Search(ctx context.Context, q string) ([]models.Case, error) {
	return run(ctx, s.base, caseOp(ActionSearch), func() []models.Case {
		return query.FilterCases(s.repo.ListCases(ctx), query.CaseFilter{Search: q})
	})
}

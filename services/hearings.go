package services

import (
	"context"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
)

type HearingService struct{ *base }

func hearingOp(action string) Op { return Op{Entity: "hearings", Action: action} }

func (s *HearingService) List(ctx context.Context, f query.HearingFilter, o query.Order) ([]models.Hearing, error) {
	return run(ctx, s.base, hearingOp(ActionList), func() []models.Hearing {
		return query.SortHearings(query.FilterHearings(s.repo.ListHearings(ctx), f), o)
	})
}

func (s *HearingService) ListPage(ctx context.Context, f query.HearingFilter, o query.Order, page, size int) (query.Page[models.Hearing], error) {
	return run(ctx, s.base, hearingOp(ActionList), func() query.Page[models.Hearing] {
		return query.Paginate(query.SortHearings(query.FilterHearings(s.repo.ListHearings(ctx), f), o), page, size)
	})
}

func (s *HearingService) Get(ctx context.Context, id string) (models.Hearing, bool, error) {
	return runFound(ctx, s.base, hearingOp(ActionGet), func() (models.Hearing, bool) {
		return s.repo.GetHearing(ctx, id)
	})
}

func (s *HearingService) ByCase(ctx context.Context, caseID string) ([]models.Hearing, error) {
	return run(ctx, s.base, hearingOp(ActionByCase), func() []models.Hearing {
		return s.repo.HearingsByCase(ctx, caseID)
	})
}

func (s *HearingService) Create(ctx context.Context, in models.HearingInput) (models.Hearing, error) {
	return run(ctx, s.base, hearingOp(ActionCreate), func() models.Hearing {
		return s.repo.CreateHearing(ctx, in)
	})
}

func (s *HearingService) Update(ctx context.Context, id string, patch models.HearingPatch) (models.Hearing, bool, error) {
	return runFound(ctx, s.base, hearingOp(ActionUpdate), func() (models.Hearing, bool) {
		return s.repo.UpdateHearing(ctx, id, patch)
	})
}

func (s *HearingService) Delete(ctx context.Context, id string) (bool, error) {
	return run(ctx, s.base, hearingOp(ActionDelete), func() bool {
		return s.repo.DeleteHearing(ctx, id)
	})
}

func (s *HearingService) Search(ctx context.Context, q string) ([]models.Hearing, error) {
	return run(ctx, s.base, hearingOp(ActionSearch), func() []models.Hearing {
		return query.FilterHearings(s.repo.ListHearings(ctx), query.HearingFilter{Search: q})
	})
}

package services

import (
	"context"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
)

type FeeService struct{ *base }

func feeOp(action string) Op { return Op{Entity: "fees", Action: action} }

// FeeStats aggregates the whole fee collection. Amounts are summed regardless of currency.
type FeeStats struct {
	Total           int     `json:"total"`
	Pending         int     `json:"pending"`
	Invoiced        int     `json:"invoiced"`
	Collected       int     `json:"collected"`
	TotalAmount     float64 `json:"total_amount"`
	PendingAmount   float64 `json:"pending_amount"`
	CollectedAmount float64 `json:"collected_amount"`
}

func (s *FeeService) List(ctx context.Context, f query.FeeFilter, o query.Order) ([]models.Fee, error) {
	return run(ctx, s.base, feeOp(ActionList), func() []models.Fee {
		return query.SortFees(query.FilterFees(s.repo.ListFees(ctx), f), o)
	})
}

func (s *FeeService) ListPage(ctx context.Context, f query.FeeFilter, o query.Order, page, size int) (query.Page[models.Fee], error) {
	return run(ctx, s.base, feeOp(ActionList), func() query.Page[models.Fee] {
		return query.Paginate(query.SortFees(query.FilterFees(s.repo.ListFees(ctx), f), o), page, size)
	})
}

func (s *FeeService) Get(ctx context.Context, id string) (models.Fee, bool, error) {
	return runFound(ctx, s.base, feeOp(ActionGet), func() (models.Fee, bool) {
		return s.repo.GetFee(ctx, id)
	})
}

func (s *FeeService) ByClient(ctx context.Context, clientID string) ([]models.Fee, error) {
	return run(ctx, s.base, feeOp(ActionByClient), func() []models.Fee {
		return s.repo.FeesByClient(ctx, clientID)
	})
}

func (s *FeeService) ByCase(ctx context.Context, caseID string) ([]models.Fee, error) {
	return run(ctx, s.base, feeOp(ActionByCase), func() []models.Fee {
		return s.repo.FeesByCase(ctx, caseID)
	})
}

func (s *FeeService) Create(ctx context.Context, in models.FeeInput) (models.Fee, error) {
	return run(ctx, s.base, feeOp(ActionCreate), func() models.Fee {
		return s.repo.CreateFee(ctx, in)
	})
}

func (s *FeeService) Update(ctx context.Context, id string, patch models.FeePatch) (models.Fee, bool, error) {
	return runFound(ctx, s.base, feeOp(ActionUpdate), func() (models.Fee, bool) {
		return s.repo.UpdateFee(ctx, id, patch)
	})
}

func (s *FeeService) Delete(ctx context.Context, id string) (bool, error) {
	return run(ctx, s.base, feeOp(ActionDelete), func() bool {
		return s.repo.DeleteFee(ctx, id)
	})
}

func (s *FeeService) Search(ctx context.Context, q string) ([]models.Fee, error) {
	return run(ctx, s.base, feeOp(ActionSearch), func() []models.Fee {
		return query.FilterFees(s.repo.ListFees(ctx), query.FeeFilter{Search: q})
	})
}

func (s *FeeService) Stats(ctx context.Context) (FeeStats, error) {
	return run(ctx, s.base, feeOp(ActionStats), func() FeeStats {
		return ComputeFeeStats(s.repo.ListFees(ctx))
	})
}

func ComputeFeeStats(fees []models.Fee) FeeStats {
	st := FeeStats{Total: len(fees)}
	for _, f := range fees {
		st.TotalAmount += f.Amount
		switch f.Status {
		case models.FeeStatusPending:
			st.Pending++
			st.PendingAmount += f.Amount
		case models.FeeStatusInvoiced:
			st.Invoiced++
		case models.FeeStatusCollected:
			st.Collected++
			st.CollectedAmount += f.Amount
		}
	}
	return st
}

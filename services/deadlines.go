package services

import (
	"context"
	"time"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
)

type DeadlineService struct{ *base }

func deadlineOp(action string) Op { return Op{Entity: "deadlines", Action: action} }

// DeadlineStats summarises the deadline board relative to now
type DeadlineStats struct {
	Overdue  int `json:"overdue"`
	DueToday int `json:"due_today"`
	Upcoming int `json:"upcoming"`
	Done     int `json:"done"`
}

// caseResolver snapshots the cases once so a listing does not lock per deadline
func (s *DeadlineService) caseResolver(ctx context.Context) query.CaseResolver {
	byID := make(map[string]models.Case)
	for _, c := range s.repo.ListCases(ctx) {
		byID[c.ID] = c
	}
	return func(id string) (models.Case, bool) {
		c, ok := byID[id]
		return c, ok
	}
}

func (s *DeadlineService) list(ctx context.Context, f query.DeadlineFilter, o query.Order) []models.Deadline {
	items := s.repo.ListDeadlines(ctx)
	var resolve query.CaseResolver
	if f.Search != "" {
		resolve = s.caseResolver(ctx)
	}
	return query.SortDeadlines(query.FilterDeadlines(items, f, resolve), o)
}

// List searches title, description and the owning case's file number and caption
func (s *DeadlineService) List(ctx context.Context, f query.DeadlineFilter, o query.Order) ([]models.Deadline, error) {
	return run(ctx, s.base, deadlineOp(ActionList), func() []models.Deadline {
		return s.list(ctx, f, o)
	})
}

func (s *DeadlineService) ListPage(ctx context.Context, f query.DeadlineFilter, o query.Order, page, size int) (query.Page[models.Deadline], error) {
	return run(ctx, s.base, deadlineOp(ActionList), func() query.Page[models.Deadline] {
		return query.Paginate(s.list(ctx, f, o), page, size)
	})
}

func (s *DeadlineService) ByCase(ctx context.Context, caseID string) ([]models.Deadline, error) {
	return run(ctx, s.base, deadlineOp(ActionByCase), func() []models.Deadline {
		return s.repo.DeadlinesByCase(ctx, caseID)
	})
}

func (s *DeadlineService) Get(ctx context.Context, id string) (models.Deadline, bool, error) {
	return runFound(ctx, s.base, deadlineOp(ActionGet), func() (models.Deadline, bool) {
		return s.repo.GetDeadline(ctx, id)
	})
}

func (s *DeadlineService) Create(ctx context.Context, in models.DeadlineInput) (models.Deadline, error) {
	return run(ctx, s.base, deadlineOp(ActionCreate), func() models.Deadline {
		return s.repo.CreateDeadline(ctx, in)
	})
}

func (s *DeadlineService) Update(ctx context.Context, id string, patch models.DeadlinePatch) (models.Deadline, bool, error) {
	return runFound(ctx, s.base, deadlineOp(ActionUpdate), func() (models.Deadline, bool) {
		return s.repo.UpdateDeadline(ctx, id, patch)
	})
}

func (s *DeadlineService) Delete(ctx context.Context, id string) (bool, error) {
	return run(ctx, s.base, deadlineOp(ActionDelete), func() bool {
		return s.repo.DeleteDeadline(ctx, id)
	})
}

func (s *DeadlineService) Stats(ctx context.Context) (DeadlineStats, error) {
	return run(ctx, s.base, deadlineOp(ActionStats), func() DeadlineStats {
		return ComputeDeadlineStats(s.repo.ListDeadlines(ctx), s.now())
	})
}

// ComputeDeadlineStats partitions deadlines relative to now. Overdue and due-today
// overlap for a deadline due earlier today; DONE deadlines only count as done.
func ComputeDeadlineStats(deadlines []models.Deadline, now time.Time) DeadlineStats {
	var st DeadlineStats
	today := now.Format(dateLayout)
	weekAhead := now.AddDate(0, 0, 7)

	for i := range deadlines {
		d := &deadlines[i]
		if d.IsDone() {
			st.Done++
			continue
		}
		if d.DueAt.Before(now) {
			st.Overdue++
		}
		if d.DueAt.In(now.Location()).Format(dateLayout) == today {
			st.DueToday++
		}
		if d.DueAt.After(now) && d.DueAt.Before(weekAhead) {
			st.Upcoming++
		}
	}
	return st
}

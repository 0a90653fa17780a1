package jobs

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"expedientes_app_go/config"
	"expedientes_app_go/models"
	"expedientes_app_go/repository"
	"expedientes_app_go/services"

	"github.com/robfig/cron/v3"
)

// agendaHorizon is how far ahead upcoming deadlines and hearings are listed
const agendaHorizon = 7 * 24 * time.Hour

// Agenda is the digest for one point in time. The three deadline groups are disjoint.
type Agenda struct {
	Overdue  []models.Deadline
	DueToday []models.Deadline
	Upcoming []models.Deadline
	Hearings []models.Hearing
}

// IsEmpty reports whether there is nothing to send
func (a Agenda) IsEmpty() bool {
	return len(a.Overdue) == 0 && len(a.DueToday) == 0 && len(a.Upcoming) == 0 && len(a.Hearings) == 0
}

// BuildAgenda collects pending deadlines that are overdue, due today or due within
// the next 7 days, and the scheduled hearings starting within the next 7 days.
// Days are evaluated in now's location.
func BuildAgenda(ctx context.Context, repo *repository.Repository, now time.Time) Agenda {
	loc := now.Location()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	endOfDay := startOfDay.AddDate(0, 0, 1)
	horizon := now.Add(agendaHorizon)

	var agenda Agenda
	for _, d := range repo.ListDeadlines(ctx) {
		if d.IsDone() {
			continue
		}
		due := d.DueAt.In(loc)
		switch {
		case due.Before(startOfDay):
			agenda.Overdue = append(agenda.Overdue, d)
		case due.Before(endOfDay):
			agenda.DueToday = append(agenda.DueToday, d)
		case due.Before(horizon):
			agenda.Upcoming = append(agenda.Upcoming, d)
		}
	}

	for _, h := range repo.ListHearings(ctx) {
		if h.Status != models.HearingStatusScheduled {
			continue
		}
		at, ok := h.StartsAt(loc)
		if !ok {
			continue
		}
		if !at.Before(now) && at.Before(horizon) {
			agenda.Hearings = append(agenda.Hearings, h)
		}
	}

	byDue := func(items []models.Deadline) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].DueAt.Before(items[j].DueAt) })
	}
	byDue(agenda.Overdue)
	byDue(agenda.DueToday)
	byDue(agenda.Upcoming)
	sort.SliceStable(agenda.Hearings, func(i, j int) bool {
		a, _ := agenda.Hearings[i].StartsAt(loc)
		b, _ := agenda.Hearings[j].StartsAt(loc)
		return a.Before(b)
	})

	return agenda
}

// SendAgendaDigest emails the agenda to every user with an email address and
// returns how many digests were handed to the mailer. An empty agenda sends nothing.
func SendAgendaDigest(ctx context.Context, repo *repository.Repository, cfg *config.Config, now time.Time) int {
	log.Println("[INFO] Starting agenda digest job...")

	agenda := BuildAgenda(ctx, repo, now)
	if agenda.IsEmpty() {
		log.Println("[INFO] Agenda is empty, no digest sent")
		return 0
	}

	caseLabels := make(map[string]string)
	for _, c := range repo.ListCases(ctx) {
		caseLabels[c.ID] = c.FileNumber + " " + c.Caption
	}
	label := func(caseID string) string {
		if l, ok := caseLabels[caseID]; ok {
			return l
		}
		return caseID
	}

	deadlineEntries := func(items []models.Deadline, layout string) []services.AgendaEntry {
		out := make([]services.AgendaEntry, 0, len(items))
		for _, d := range items {
			out = append(out, services.AgendaEntry{
				When:     d.DueAt.In(now.Location()).Format(layout),
				Title:    d.Title,
				Case:     label(d.CaseID),
				Priority: d.Priority,
			})
		}
		return out
	}
	hearings := make([]services.AgendaEntry, 0, len(agenda.Hearings))
	for _, h := range agenda.Hearings {
		hearings = append(hearings, services.AgendaEntry{
			When:  h.Date + " " + h.Time,
			Title: h.Title,
			Case:  label(h.CaseID),
		})
	}

	data := services.AgendaDigestEmailData{
		Date:     now.Format("2006-01-02"),
		AppURL:   cfg.AppURL,
		Overdue:  deadlineEntries(agenda.Overdue, "2006-01-02"),
		DueToday: deadlineEntries(agenda.DueToday, "15:04"),
		Upcoming: deadlineEntries(agenda.Upcoming, "2006-01-02 15:04"),
		Hearings: hearings,
	}

	sent := 0
	for _, u := range repo.ListUsers(ctx) {
		if u.Email == "" {
			continue
		}
		data.UserName = u.Name
		email := services.BuildAgendaDigestEmail(u.Email, data)
		if err := services.SendEmail(cfg, email); err != nil {
			log.Printf("[WARNING] Failed to send agenda digest to user %s: %v", u.ID, err)
			continue
		}
		sent++
	}

	log.Printf("[INFO] Agenda digest job completed: %d sent", sent)
	return sent
}

// AgendaLocation resolves cfg.AgendaTimezone, falling back to UTC when it is empty or unknown
func AgendaLocation(cfg *config.Config) *time.Location {
	if cfg.AgendaTimezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(cfg.AgendaTimezone)
	if err != nil {
		log.Printf("[WARNING] Unknown AGENDA_TIMEZONE %q, using UTC", cfg.AgendaTimezone)
		return time.UTC
	}
	return loc
}

// RunAgendaScheduler sends the digest every interval until ctx is done.
// Days are grouped in the configured agenda timezone.
func RunAgendaScheduler(ctx context.Context, repo *repository.Repository, cfg *config.Config, interval time.Duration) {
	if interval <= 0 {
		log.Println("[INFO] Agenda digest disabled")
		return
	}
	loc := AgendaLocation(cfg)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			SendAgendaDigest(ctx, repo, cfg, t.In(loc))
		}
	}
}

// StartAgendaCron schedules the digest on a cron expression evaluated in loc.
// The agenda days are grouped in loc as well.
// The returned cron is already running; callers stop it on shutdown.
func StartAgendaCron(ctx context.Context, repo *repository.Repository, cfg *config.Config, spec string, loc *time.Location) (*cron.Cron, error) {
	if loc == nil {
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		log.Println("[CRON] Sending agenda digest")
		SendAgendaDigest(ctx, repo, cfg, time.Now().In(loc))
	})
	if err != nil {
		return nil, fmt.Errorf("invalid agenda schedule %q: %w", spec, err)
	}
	c.Start()
	log.Printf("[CRON] Agenda digest scheduled (%s, %s)", spec, loc)
	return c, nil
}

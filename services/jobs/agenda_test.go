package jobs

import (
	"context"
	"testing"
	"time"

	"expedientes_app_go/config"
	"expedientes_app_go/models"
	"expedientes_app_go/repository"
	"expedientes_app_go/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func setupAgendaRepo(t *testing.T, users []models.User) *repository.Repository {
	t.Helper()
	ctx := context.Background()
	store := storage.NewVersionedStore(storage.NewMemoryBackend(), "software-abogados-data", "1.0.0")

	doc := models.EmptyDataset()
	doc.Users = users
	store.Save(ctx, doc)

	return repository.New(ctx, store)
}

func addDeadline(ctx context.Context, repo *repository.Repository, caseID, title string, due time.Time, status string) {
	repo.CreateDeadline(ctx, models.DeadlineInput{
		CaseID:   caseID,
		Kind:     models.DeadlineKindFiling,
		Title:    title,
		StartsAt: due.Add(-time.Hour),
		DueAt:    due,
		Priority: models.PriorityMedium,
		Status:   status,
	})
}

func addHearing(ctx context.Context, repo *repository.Repository, caseID, title, date, clock, status string) {
	repo.CreateHearing(ctx, models.HearingInput{
		CaseID:          caseID,
		Title:           title,
		Date:            date,
		Time:            clock,
		DurationMinutes: 60,
		Kind:            models.HearingKindPreliminary,
		Status:          status,
	})
}

func TestBuildAgenda(t *testing.T) {
	ctx := context.Background()
	repo := setupAgendaRepo(t, nil)

	addDeadline(ctx, repo, "c1", "late", now.Add(-48*time.Hour), models.DeadlineStatusPending)
	addDeadline(ctx, repo, "c1", "this morning", now.Add(-3*time.Hour), models.DeadlineStatusPending)
	addDeadline(ctx, repo, "c1", "tonight", now.Add(6*time.Hour), models.DeadlineStatusPending)
	addDeadline(ctx, repo, "c1", "in three days", now.Add(72*time.Hour), models.DeadlineStatusPending)
	addDeadline(ctx, repo, "c1", "in two days", now.Add(48*time.Hour), models.DeadlineStatusPending)
	addDeadline(ctx, repo, "c1", "far", now.Add(10*24*time.Hour), models.DeadlineStatusPending)
	addDeadline(ctx, repo, "c1", "done", now.Add(-48*time.Hour), models.DeadlineStatusDone)

	addHearing(ctx, repo, "c1", "tomorrow", "2024-05-11", "10:00", models.HearingStatusScheduled)
	addHearing(ctx, repo, "c1", "cancelled", "2024-05-11", "11:00", models.HearingStatusCancelled)
	addHearing(ctx, repo, "c1", "earlier today", "2024-05-10", "09:00", models.HearingStatusScheduled)
	addHearing(ctx, repo, "c1", "next month", "2024-06-10", "09:00", models.HearingStatusScheduled)
	addHearing(ctx, repo, "c1", "broken date", "10/05/2024", "09:00", models.HearingStatusScheduled)

	agenda := BuildAgenda(ctx, repo, now)

	titles := func(items []models.Deadline) []string {
		out := []string{}
		for _, d := range items {
			out = append(out, d.Title)
		}
		return out
	}
	assert.Equal(t, []string{"late"}, titles(agenda.Overdue))
	assert.Equal(t, []string{"this morning", "tonight"}, titles(agenda.DueToday))
	assert.Equal(t, []string{"in two days", "in three days"}, titles(agenda.Upcoming))
	require.Len(t, agenda.Hearings, 1)
	assert.Equal(t, "tomorrow", agenda.Hearings[0].Title)
	assert.False(t, agenda.IsEmpty())
}

func TestBuildAgenda_GroupsDaysInNowLocation(t *testing.T) {
	ctx := context.Background()
	repo := setupAgendaRepo(t, nil)
	art := time.FixedZone("ART", -3*60*60)

	// 22:00 in Buenos Aires is already the next day in UTC
	localNow := time.Date(2024, 5, 10, 22, 0, 0, 0, art)
	addDeadline(ctx, repo, "c1", "tonight", time.Date(2024, 5, 10, 20, 0, 0, 0, art), models.DeadlineStatusPending)
	addHearing(ctx, repo, "c1", "tomorrow morning", "2024-05-11", "09:00", models.HearingStatusScheduled)

	local := BuildAgenda(ctx, repo, localNow)
	assert.Empty(t, local.Overdue)
	require.Len(t, local.DueToday, 1)
	assert.Equal(t, "tonight", local.DueToday[0].Title)
	require.Len(t, local.Hearings, 1)

	utc := BuildAgenda(ctx, repo, localNow.UTC())
	assert.Len(t, utc.Overdue, 1)
	assert.Empty(t, utc.DueToday)
}

func TestAgendaLocation(t *testing.T) {
	assert.Equal(t, time.UTC, AgendaLocation(&config.Config{}))
	assert.Equal(t, time.UTC, AgendaLocation(&config.Config{AgendaTimezone: "Nowhere/Atlantis"}))
	assert.Equal(t, "UTC", AgendaLocation(&config.Config{AgendaTimezone: "UTC"}).String())
}

func TestSendAgendaDigest(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		AppURL:        "http://test.com",
		EmailTestMode: true, // SendEmail logs to console instead of sending
	}
	repo := setupAgendaRepo(t, []models.User{
		{ID: "u1", Name: "Ana", Email: "ana@example.com", Role: models.RoleLawyer},
		{ID: "u2", Name: "Sin correo", Role: models.RoleAssistant},
		{ID: "u3", Name: "Luis", Email: "luis@example.com", Role: models.RoleAdmin},
	})

	assert.Equal(t, 0, SendAgendaDigest(ctx, repo, cfg, now), "empty agenda sends nothing")

	c := repo.CreateCase(ctx, models.CaseInput{
		FileNumber:       "123/2024",
		Caption:          "Pérez c/ ACME",
		JurisdictionArea: models.AreaLabor,
		Status:           models.CaseStatusOpen,
		ClientID:         "client-1",
		OwnerIDs:         []string{"u1"},
	})
	addDeadline(ctx, repo, c.ID, "Contestar demanda", now.Add(2*time.Hour), models.DeadlineStatusPending)

	assert.Equal(t, 2, SendAgendaDigest(ctx, repo, cfg, now))
}

func TestSendAgendaDigest_MailerFailure(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{EmailTestMode: false} // no RESEND_API_KEY
	repo := setupAgendaRepo(t, []models.User{{ID: "u1", Name: "Ana", Email: "ana@example.com"}})
	addDeadline(ctx, repo, "c1", "late", now.Add(-48*time.Hour), models.DeadlineStatusPending)

	assert.Equal(t, 0, SendAgendaDigest(ctx, repo, cfg, now))
}

func TestRunAgendaScheduler_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	repo := setupAgendaRepo(t, nil)

	done := make(chan struct{})
	go func() {
		RunAgendaScheduler(ctx, repo, &config.Config{EmailTestMode: true}, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
}

func TestStartAgendaCron(t *testing.T) {
	repo := setupAgendaRepo(t, nil)
	cfg := &config.Config{EmailTestMode: true}

	c, err := StartAgendaCron(context.Background(), repo, cfg, "0 7 * * *", nil)
	require.NoError(t, err)
	defer c.Stop()

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 7, entries[0].Next.In(time.UTC).Hour())

	_, err = StartAgendaCron(context.Background(), repo, cfg, "not a schedule", time.UTC)
	assert.Error(t, err)
}

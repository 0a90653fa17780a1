package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"expedientes_app_go/models"
	"expedientes_app_go/query"
	"expedientes_app_go/repository"
	"expedientes_app_go/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func setupTestRepo(t *testing.T) *repository.Repository {
	t.Helper()
	seq := 0
	store := storage.NewVersionedStore(storage.NewMemoryBackend(), "software-abogados-data", "1.0.0")
	return repository.New(context.Background(), store,
		repository.WithClock(func() time.Time { return testNow }),
		repository.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%d", seq)
		}),
	)
}

func setupTestServices(t *testing.T) (*Services, *repository.Repository) {
	t.Helper()
	repo := setupTestRepo(t)
	return New(repo, NoopTransport{}, WithClock(func() time.Time { return testNow })), repo
}

func testCaseInput(clientID, fileNumber, caption string) models.CaseInput {
	return models.CaseInput{
		FileNumber:       fileNumber,
		Caption:          caption,
		JurisdictionArea: models.AreaLabor,
		Status:           models.CaseStatusOpen,
		ClientID:         clientID,
		OwnerIDs:         []string{"u1"},
	}
}

func testFeeInput(caseID, clientID string, amount float64, status string) models.FeeInput {
	return models.FeeInput{
		CaseID:      caseID,
		ClientID:    clientID,
		Concept:     "Honorarios",
		Amount:      amount,
		Currency:    models.CurrencyARS,
		Kind:        models.FeeKindFees,
		Status:      status,
		ServiceDate: "2024-05-01",
	}
}

// blockingTransport only returns once ctx is done
type blockingTransport struct{}

func (blockingTransport) Wait(ctx context.Context, op Op) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestServices_DelegatesToRepository(t *testing.T) {
	svc, repo := setupTestServices(t)
	ctx := context.Background()

	created, err := svc.Cases.Create(ctx, testCaseInput("c1", "12345/2024", "Pérez c/ ACME"))
	require.NoError(t, err)
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, testNow, created.CreatedAt)

	stored, ok := repo.GetCase(ctx, created.ID)
	require.True(t, ok)
	assert.Equal(t, created, stored)

	got, found, err := svc.Cases.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, created, got)

	_, found, err = svc.Cases.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	updated, found, err := svc.Cases.Update(ctx, created.ID, models.CasePatch{Status: models.StringPtr(models.CaseStatusClosed)})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.CaseStatusClosed, updated.Status)

	deleted, err := svc.Cases.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Cases.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestServices_NilTransportDefaultsToNoop(t *testing.T) {
	svc := New(setupTestRepo(t), nil)
	clients, err := svc.Clients.List(context.Background(), query.ClientFilter{})
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestServices_CanceledContextSkipsRepository(t *testing.T) {
	repo := setupTestRepo(t)
	svc := New(repo, blockingTransport{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Clients.Create(ctx, models.ClientInput{Kind: models.ClientKindPerson, Name: "Ana", DocumentID: models.StringPtr("1")})
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Empty(t, repo.ListClients(context.Background()))
}

func TestServices_RandomTransportCancel(t *testing.T) {
	repo := setupTestRepo(t)
	svc := New(repo, NewRandomTransport(1, 0).WithSeed(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Cases.Create(ctx, testCaseInput("c1", "1/2024", "Caratula"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, repo.ListCases(context.Background()))
}

func TestServices_ConnectionFailure(t *testing.T) {
	repo := setupTestRepo(t)
	svc := New(repo, NewRandomTransport(0, 1))

	_, err := svc.Cases.Create(context.Background(), testCaseInput("c1", "1/2024", "Caratula"))
	assert.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, "Error de conexión. Intentá nuevamente.", err.Error())
	assert.Empty(t, repo.ListCases(context.Background()))
}

func TestServices_ListPage(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		_, err := svc.Cases.Create(ctx, testCaseInput("c1", fmt.Sprintf("%d/2024", i+1), fmt.Sprintf("Caso %d", i+1)))
		require.NoError(t, err)
	}

	page, err := svc.Cases.ListPage(ctx, query.CaseFilter{}, query.Order{}, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 12, page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 2)
}

func TestServices_SearchAndSecondaryLookups(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	c1, _ := svc.Cases.Create(ctx, testCaseInput("client-1", "100/2024", "Gómez c/ Banco"))
	c2, _ := svc.Cases.Create(ctx, testCaseInput("client-2", "200/2024", "López s/ sucesión"))

	found, err := svc.Cases.Search(ctx, "banco")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, c1.ID, found[0].ID)

	_, err = svc.Fees.Create(ctx, testFeeInput(c1.ID, "client-1", 100, models.FeeStatusPending))
	require.NoError(t, err)
	_, err = svc.Fees.Create(ctx, testFeeInput(c2.ID, "client-2", 200, models.FeeStatusPending))
	require.NoError(t, err)

	byClient, err := svc.Fees.ByClient(ctx, "client-2")
	require.NoError(t, err)
	require.Len(t, byClient, 1)
	assert.Equal(t, c2.ID, byClient[0].CaseID)

	byCase, err := svc.Fees.ByCase(ctx, c1.ID)
	require.NoError(t, err)
	assert.Len(t, byCase, 1)
}

func TestDeadlineService_SearchByCase(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	c, _ := svc.Cases.Create(ctx, testCaseInput("client-1", "555/2023", "Martínez c/ Estado"))
	_, err := svc.Deadlines.Create(ctx, models.DeadlineInput{
		CaseID:   c.ID,
		Kind:     models.DeadlineKindFiling,
		Title:    "Contestar demanda",
		StartsAt: testNow,
		DueAt:    testNow.Add(48 * time.Hour),
		Priority: models.PriorityHigh,
	})
	require.NoError(t, err)

	hits, err := svc.Deadlines.List(ctx, query.DeadlineFilter{Search: "555/2023"}, query.Order{})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, models.DeadlineStatusPending, hits[0].Status)

	hits, err = svc.Deadlines.List(ctx, query.DeadlineFilter{Search: "inexistente"}, query.Order{})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestComputeFeeStats(t *testing.T) {
	fees := []models.Fee{
		{Amount: 100, Status: models.FeeStatusPending},
		{Amount: 200, Status: models.FeeStatusCollected},
		{Amount: 300, Status: models.FeeStatusInvoiced},
	}

	st := ComputeFeeStats(fees)
	assert.Equal(t, FeeStats{
		Total:           3,
		Pending:         1,
		Invoiced:        1,
		Collected:       1,
		TotalAmount:     600,
		PendingAmount:   100,
		CollectedAmount: 200,
	}, st)

	assert.Equal(t, FeeStats{}, ComputeFeeStats(nil))
}

func TestComputeInvoiceStats(t *testing.T) {
	invoices := []models.Invoice{
		{Total: 121, Status: models.InvoiceStatusIssued},
		{Total: 50, Status: models.InvoiceStatusSent},
		{Total: 200, Status: models.InvoiceStatusPaid},
		{Total: 10, Status: models.InvoiceStatusOverdue},
		{Total: 5, Status: models.InvoiceStatusDraft},
	}

	st := ComputeInvoiceStats(invoices)
	assert.Equal(t, 5, st.Total)
	assert.Equal(t, 2, st.Issued)
	assert.Equal(t, 1, st.Paid)
	assert.Equal(t, 1, st.Overdue)
	assert.InDelta(t, 386, st.TotalAmount, 0.001)
	assert.InDelta(t, 171, st.IssuedAmount, 0.001)
	assert.InDelta(t, 200, st.PaidAmount, 0.001)
	assert.InDelta(t, 10, st.OverdueAmount, 0.001)
}

func TestComputeDeadlineStats(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	deadlines := []models.Deadline{
		{DueAt: now.Add(-48 * time.Hour), Status: models.DeadlineStatusPending},  // overdue
		{DueAt: now.Add(-2 * time.Hour), Status: models.DeadlineStatusPending},   // overdue and today
		{DueAt: now.Add(3 * time.Hour), Status: models.DeadlineStatusPending},    // today and upcoming
		{DueAt: now.Add(72 * time.Hour), Status: models.DeadlineStatusPending},   // upcoming
		{DueAt: now.Add(10 * 24 * time.Hour), Status: models.DeadlineStatusPending},
		{DueAt: now.Add(-72 * time.Hour), Status: models.DeadlineStatusDone},
	}

	st := ComputeDeadlineStats(deadlines, now)
	assert.Equal(t, DeadlineStats{Overdue: 2, DueToday: 2, Upcoming: 2, Done: 1}, st)
}

func TestDeadlineService_StatsUsesClock(t *testing.T) {
	svc, _ := setupTestServices(t)
	ctx := context.Background()

	_, err := svc.Deadlines.Create(ctx, models.DeadlineInput{
		CaseID:   "case-1",
		Kind:     models.DeadlineKindResponse,
		Title:    "Vencido",
		StartsAt: testNow.Add(-96 * time.Hour),
		DueAt:    testNow.Add(-72 * time.Hour),
		Priority: models.PriorityLow,
	})
	require.NoError(t, err)

	st, err := svc.Deadlines.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Overdue)
}

func TestDraftInvoiceFromFees(t *testing.T) {
	fees := []models.Fee{
		{ID: "f1", Amount: 1000, Currency: models.CurrencyUSD},
		{ID: "f2", Amount: 500, Currency: models.CurrencyUSD},
	}
	caseID := "case-1"

	in := DraftInvoiceFromFees(fees, []string{"f1", "f2", "missing"}, "client-1", &caseID, testNow)

	assert.InDelta(t, 1500, in.Subtotal, 0.001)
	assert.InDelta(t, 315, in.Taxes, 0.001)
	assert.InDelta(t, 1815, in.Total, 0.001)
	assert.Equal(t, models.CurrencyUSD, in.Currency)
	assert.Equal(t, models.InvoiceStatusDraft, in.Status)
	assert.Equal(t, models.InvoiceTypeA, in.InvoiceType)
	assert.Equal(t, models.SaleTermsCurrentAccount, in.SaleTerms)
	assert.Equal(t, "2024-05-10", in.IssueDate)
	assert.Equal(t, "2024-06-09", in.DueDate)
	assert.Equal(t, []string{"f1", "f2", "missing"}, in.FeeIDs)
	assert.Equal(t, "Factura generada automáticamente desde 2 honorario(s)", models.StringValue(in.Notes))

	caseID = "changed"
	assert.Equal(t, "case-1", models.StringValue(in.CaseID))
}

func TestDraftInvoiceFromFees_NoFees(t *testing.T) {
	in := DraftInvoiceFromFees(nil, nil, "client-1", nil, testNow)
	assert.Zero(t, in.Total)
	assert.Equal(t, models.CurrencyARS, in.Currency)
	assert.Nil(t, in.CaseID)
	assert.Equal(t, []string{}, in.FeeIDs)
}

func TestInvoiceNumber(t *testing.T) {
	now := time.UnixMilli(1715342400123).UTC()
	assert.Equal(t, "FAC-2024-400123", invoiceNumber(now))
}

func TestInvoiceService_GenerateFromFees(t *testing.T) {
	svc, repo := setupTestServices(t)
	ctx := context.Background()

	f1, _ := svc.Fees.Create(ctx, testFeeInput("case-1", "client-1", 100, models.FeeStatusPending))
	f2, _ := svc.Fees.Create(ctx, testFeeInput("case-1", "client-1", 200, models.FeeStatusPending))

	first, err := svc.Invoices.GenerateFromFees(ctx, []string{f1.ID, f2.ID}, "client-1", nil)
	require.NoError(t, err)
	assert.InDelta(t, 363, first.Total, 0.001)

	// A fee already invoiced may be billed again
	second, err := svc.Invoices.GenerateFromFees(ctx, []string{f1.ID}, "client-1", nil)
	require.NoError(t, err)
	assert.InDelta(t, 121, second.Total, 0.001)

	all := repo.ListInvoices(ctx)
	assert.Len(t, all, 2)

	// Fees are not marked as invoiced
	stored, _ := repo.GetFee(ctx, f1.ID)
	assert.Equal(t, models.FeeStatusPending, stored.Status)
}

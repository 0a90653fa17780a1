package validation

import (
	"testing"
	"time"

	"expedientes_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCase() models.CaseInput {
	return models.CaseInput{
		FileNumber:       "12345/2024",
		Caption:          "Pérez c/ ACME s/ despido",
		JurisdictionArea: models.AreaLabor,
		Status:           models.CaseStatusOpen,
		ClientID:         "client-1",
		OwnerIDs:         []string{"u1"},
	}
}

func fieldErrors(t *testing.T, err error) FieldErrors {
	t.Helper()
	require.Error(t, err)
	fe, ok := err.(FieldErrors)
	require.True(t, ok, "expected FieldErrors, got %T", err)
	return fe
}

func TestCaseInput(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Struct(validCase()))
	})

	t.Run("file number format", func(t *testing.T) {
		for _, bad := range []string{"12345", "12345/24", "abc/2024", "12/20245"} {
			in := validCase()
			in.FileNumber = bad
			fe := fieldErrors(t, Struct(in))
			assert.Contains(t, fe, "file_number", bad)
		}
	})

	t.Run("caption length", func(t *testing.T) {
		in := validCase()
		in.Caption = "ab"
		assert.Contains(t, fieldErrors(t, Struct(in)), "caption")
	})

	t.Run("at least one owner", func(t *testing.T) {
		in := validCase()
		in.OwnerIDs = nil
		assert.Contains(t, fieldErrors(t, Struct(in)), "owner_ids")
	})

	t.Run("unknown enum value", func(t *testing.T) {
		in := validCase()
		in.Status = "ARCHIVED"
		fe := fieldErrors(t, Struct(in))
		assert.Equal(t, "must be one of: OPEN IN_PROGRESS CLOSED", fe["status"])
	})

	t.Run("patch only checks present fields", func(t *testing.T) {
		assert.NoError(t, Struct(models.CasePatch{Notes: models.StringPtr("x")}))
		assert.Contains(t, fieldErrors(t, Struct(models.CasePatch{FileNumber: models.StringPtr("1/1")})), "file_number")
	})
}

func TestDeadlineInput(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	in := models.DeadlineInput{
		CaseID:   "e1",
		Kind:     models.DeadlineKindFiling,
		Title:    "Contestar demanda",
		StartsAt: start,
		DueAt:    start.Add(48 * time.Hour),
		Priority: models.PriorityHigh,
	}
	assert.NoError(t, Struct(in))

	in.DueAt = start.Add(-time.Hour)
	assert.Contains(t, fieldErrors(t, Struct(in)), "due_at")
}

func TestClientInput(t *testing.T) {
	in := models.ClientInput{Kind: models.ClientKindPerson, Name: "Juan", DocumentID: models.StringPtr("20-12345678-9")}
	assert.NoError(t, Struct(in))

	in.Email = models.StringPtr("not-an-email")
	assert.Contains(t, fieldErrors(t, Struct(in)), "email")

	in.Email = nil
	in.DocumentID = nil
	assert.Contains(t, fieldErrors(t, Struct(in)), "document_id")
}

func TestHearingInput(t *testing.T) {
	in := models.HearingInput{
		CaseID: "e1", Title: "Audiencia preliminar", Date: "2024-06-01", Time: "10:30",
		Kind: models.HearingKindPreliminary, Status: models.HearingStatusScheduled,
	}
	assert.NoError(t, Struct(in))

	in.Time = "25:00"
	assert.Contains(t, fieldErrors(t, Struct(in)), "time")
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Pérez & Asociados", SanitizeText("  <b>Pérez</b> & Asociados "))
	assert.Equal(t, "hola", SanitizeText(`<script>alert(1)</script>hola`))
	assert.Equal(t, "a < b", SanitizeText("a &lt; b"))

	t.Run("entity encoded markup", func(t *testing.T) {
		assert.Equal(t, "hola", SanitizeText("&lt;b&gt;hola&lt;/b&gt;"))
		assert.NotContains(t, SanitizeText("&lt;script&gt;alert(1)&lt;/script&gt;"), "<script")
		assert.NotContains(t, SanitizeText("&amp;lt;img src=x onerror=alert(1)&amp;gt;"), "<img")
	})

	in := validCase()
	in.Caption = "<i>Pérez</i> c/ ACME"
	in.Notes = models.StringPtr("<a href=\"x\">ver</a>")
	in.OwnerIDs = []string{"<b>u1</b>"}
	Sanitize(&in)

	assert.Equal(t, "Pérez c/ ACME", in.Caption)
	assert.Equal(t, "ver", *in.Notes)
	assert.Equal(t, []string{"u1"}, in.OwnerIDs)
}

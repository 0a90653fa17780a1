package handlers

import (
	"errors"
	"log"
	"net/http"

	"expedientes_app_go/config"
	"expedientes_app_go/repository"
	"expedientes_app_go/services"
	"expedientes_app_go/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// API exposes the service facade over HTTP
type API struct {
	svc  *services.Services
	repo *repository.Repository
	cfg  *config.Config
}

// NewAPI creates the HTTP layer. repo is only used by the spreadsheet import.
func NewAPI(svc *services.Services, repo *repository.Repository, cfg *config.Config) *API {
	return &API{svc: svc, repo: repo, cfg: cfg}
}

// Register mounts every route on e
func Register(e *echo.Echo, api *API) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g := e.Group("/api")

	g.GET("/clients", api.ListClients)
	g.POST("/clients", api.CreateClient)
	g.GET("/clients/:id", api.GetClient)
	g.PUT("/clients/:id", api.UpdateClient)
	g.DELETE("/clients/:id", api.DeleteClient)
	g.GET("/clients/:id/fees", api.FeesByClient)
	g.GET("/clients/:id/invoices", api.InvoicesByClient)

	g.GET("/cases", api.ListCases)
	g.POST("/cases", api.CreateCase)
	g.GET("/cases/:id", api.GetCase)
	g.PUT("/cases/:id", api.UpdateCase)
	g.DELETE("/cases/:id", api.DeleteCase)
	g.GET("/cases/:id/deadlines", api.DeadlinesByCase)
	g.GET("/cases/:id/hearings", api.HearingsByCase)
	g.GET("/cases/:id/fees", api.FeesByCase)
	g.GET("/cases/:id/invoices", api.InvoicesByCase)

	g.GET("/deadlines", api.ListDeadlines)
	g.GET("/deadlines/stats", api.DeadlineStats)
	g.POST("/deadlines", api.CreateDeadline)
	g.GET("/deadlines/:id", api.GetDeadline)
	g.PUT("/deadlines/:id", api.UpdateDeadline)
	g.DELETE("/deadlines/:id", api.DeleteDeadline)

	g.GET("/hearings", api.ListHearings)
	g.POST("/hearings", api.CreateHearing)
	g.GET("/hearings/:id", api.GetHearing)
	g.PUT("/hearings/:id", api.UpdateHearing)
	g.DELETE("/hearings/:id", api.DeleteHearing)

	g.GET("/fees", api.ListFees)
	g.GET("/fees/stats", api.FeeStats)
	g.POST("/fees", api.CreateFee)
	g.GET("/fees/:id", api.GetFee)
	g.PUT("/fees/:id", api.UpdateFee)
	g.DELETE("/fees/:id", api.DeleteFee)

	g.GET("/invoices", api.ListInvoices)
	g.GET("/invoices/stats", api.InvoiceStats)
	g.POST("/invoices", api.CreateInvoice)
	g.POST("/invoices/generate", api.GenerateInvoice)
	g.GET("/invoices/:id", api.GetInvoice)
	g.PUT("/invoices/:id", api.UpdateInvoice)
	g.DELETE("/invoices/:id", api.DeleteInvoice)

	g.GET("/users", api.ListUsers)
	g.GET("/users/:id", api.GetUser)

	g.GET("/import/template", api.DownloadImportTemplate)
	g.POST("/import", api.ImportSpreadsheet)
}

// serviceError maps facade errors to HTTP errors
func serviceError(err error, action string) error {
	switch {
	case errors.Is(err, services.ErrConnection):
		return echo.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		log.Printf("[WARNING] %s failed: %v", action, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to "+action)
	}
}

func notFound(entity string) error {
	return echo.NewHTTPError(http.StatusNotFound, entity+" not found")
}

// bindInput decodes the JSON body into v, strips markup from its text fields and validates it
func bindInput(c echo.Context, v any) error {
	if err := c.Bind(v); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	validation.Sanitize(v)
	if err := validation.Struct(v); err != nil {
		var fields validation.FieldErrors
		if errors.As(err, &fields) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, map[string]interface{}{
				"error":  "Validation failed",
				"fields": fields,
			})
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

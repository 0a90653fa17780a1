package handlers

import (
	"net/http"

	"expedientes_app_go/models"
	"expedientes_app_go/query"

	"github.com/labstack/echo/v4"
)

// GenerateInvoiceRequest selects the fees to bill
type GenerateInvoiceRequest struct {
	FeeIDs   []string `json:"fee_ids" validate:"required,min=1,dive,required"`
	ClientID string   `json:"client_id" validate:"required"`
	CaseID   *string  `json:"case_id,omitempty"`
}

// ListInvoices returns invoices with filtering, sorting and pagination.
// date_from/date_to bound the issue date, min_amount/max_amount the total.
func (api *API) ListInvoices(c echo.Context) error {
	total, err := amountRange(c)
	if err != nil {
		return err
	}
	dates, err := dateRange(c)
	if err != nil {
		return err
	}
	f := query.InvoiceFilter{
		Search:       c.QueryParam("search"),
		Statuses:     upperMulti(c, "status"),
		ClientIDs:    multi(c, "client_id"),
		CaseIDs:      multi(c, "case_id"),
		InvoiceTypes: upperMulti(c, "invoice_type"),
		Issued:       dates,
		Total:        total,
	}
	o := query.ResolveInvoiceOrder(order(c))
	page, limit := pagination(c)

	p, err := api.svc.Invoices.ListPage(c.Request().Context(), f, o, page, limit)
	if err != nil {
		return serviceError(err, "fetch invoices")
	}
	return listResponse(c, p, f.ActiveCount(), o)
}

func (api *API) InvoiceStats(c echo.Context) error {
	stats, err := api.svc.Invoices.Stats(c.Request().Context())
	if err != nil {
		return serviceError(err, "compute invoice stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func (api *API) GetInvoice(c echo.Context) error {
	inv, found, err := api.svc.Invoices.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch invoice")
	}
	if !found {
		return notFound("Invoice")
	}
	return c.JSON(http.StatusOK, inv)
}

func (api *API) CreateInvoice(c echo.Context) error {
	var in models.InvoiceInput
	if err := bindInput(c, &in); err != nil {
		return err
	}
	inv, err := api.svc.Invoices.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err, "create invoice")
	}
	return c.JSON(http.StatusCreated, inv)
}

// GenerateInvoice drafts an invoice from the selected fees
func (api *API) GenerateInvoice(c echo.Context) error {
	var req GenerateInvoiceRequest
	if err := bindInput(c, &req); err != nil {
		return err
	}
	inv, err := api.svc.Invoices.GenerateFromFees(c.Request().Context(), req.FeeIDs, req.ClientID, req.CaseID)
	if err != nil {
		return serviceError(err, "generate invoice")
	}
	return c.JSON(http.StatusCreated, inv)
}

func (api *API) UpdateInvoice(c echo.Context) error {
	var patch models.InvoicePatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}
	inv, found, err := api.svc.Invoices.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err, "update invoice")
	}
	if !found {
		return notFound("Invoice")
	}
	return c.JSON(http.StatusOK, inv)
}

func (api *API) DeleteInvoice(c echo.Context) error {
	deleted, err := api.svc.Invoices.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "delete invoice")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

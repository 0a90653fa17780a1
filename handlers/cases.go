package handlers

import (
	"net/http"

	"expedientes_app_go/models"
	"expedientes_app_go/query"

	"github.com/labstack/echo/v4"
)

// ListCases returns cases with filtering, sorting and pagination
func (api *API) ListCases(c echo.Context) error {
	dates, err := dateRange(c)
	if err != nil {
		return err
	}
	f := query.CaseFilter{
		Search:            c.QueryParam("search"),
		JurisdictionAreas: upperMulti(c, "jurisdiction_area"),
		Statuses:          upperMulti(c, "status"),
		Jurisdictions:     multi(c, "jurisdiction"),
		Created:           dates,
	}
	o := query.ResolveCaseOrder(order(c))
	page, limit := pagination(c)

	p, err := api.svc.Cases.ListPage(c.Request().Context(), f, o, page, limit)
	if err != nil {
		return serviceError(err, "fetch cases")
	}
	return listResponse(c, p, f.ActiveCount(), o)
}

func (api *API) GetCase(c echo.Context) error {
	record, found, err := api.svc.Cases.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch case")
	}
	if !found {
		return notFound("Case")
	}
	return c.JSON(http.StatusOK, record)
}

func (api *API) CreateCase(c echo.Context) error {
	var in models.CaseInput
	if err := bindInput(c, &in); err != nil {
		return err
	}
	record, err := api.svc.Cases.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err, "create case")
	}
	return c.JSON(http.StatusCreated, record)
}

func (api *API) UpdateCase(c echo.Context) error {
	var patch models.CasePatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}
	record, found, err := api.svc.Cases.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err, "update case")
	}
	if !found {
		return notFound("Case")
	}
	return c.JSON(http.StatusOK, record)
}

// DeleteCase is idempotent; deleted reports whether a record was removed.
// Deadlines, hearings, fees and invoices of the case are left in place.
func (api *API) DeleteCase(c echo.Context) error {
	deleted, err := api.svc.Cases.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "delete case")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

func (api *API) DeadlinesByCase(c echo.Context) error {
	items, err := api.svc.Deadlines.ByCase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch deadlines")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func (api *API) HearingsByCase(c echo.Context) error {
	items, err := api.svc.Hearings.ByCase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch hearings")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func (api *API) FeesByCase(c echo.Context) error {
	items, err := api.svc.Fees.ByCase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch fees")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func (api *API) InvoicesByCase(c echo.Context) error {
	items, err := api.svc.Invoices.ByCase(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch invoices")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

package handlers

import (
	"net/http"

	"expedientes_app_go/models"
	"expedientes_app_go/query"

	"github.com/labstack/echo/v4"
)

// ListFees returns fees with filtering, sorting and pagination.
// date_from/date_to bound the service date, min_amount/max_amount the amount.
func (api *API) ListFees(c echo.Context) error {
	amount, err := amountRange(c)
	if err != nil {
		return err
	}
	dates, err := dateRange(c)
	if err != nil {
		return err
	}
	f := query.FeeFilter{
		Search:    c.QueryParam("search"),
		Kinds:     upperMulti(c, "kind"),
		Statuses:  upperMulti(c, "status"),
		ClientIDs: multi(c, "client_id"),
		CaseIDs:   multi(c, "case_id"),
		Service:   dates,
		Amount:    amount,
	}
	o := query.ResolveFeeOrder(order(c))
	page, limit := pagination(c)

	p, err := api.svc.Fees.ListPage(c.Request().Context(), f, o, page, limit)
	if err != nil {
		return serviceError(err, "fetch fees")
	}
	return listResponse(c, p, f.ActiveCount(), o)
}

func (api *API) FeeStats(c echo.Context) error {
	stats, err := api.svc.Fees.Stats(c.Request().Context())
	if err != nil {
		return serviceError(err, "compute fee stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func (api *API) GetFee(c echo.Context) error {
	fee, found, err := api.svc.Fees.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch fee")
	}
	if !found {
		return notFound("Fee")
	}
	return c.JSON(http.StatusOK, fee)
}

func (api *API) CreateFee(c echo.Context) error {
	var in models.FeeInput
	if err := bindInput(c, &in); err != nil {
		return err
	}
	fee, err := api.svc.Fees.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err, "create fee")
	}
	return c.JSON(http.StatusCreated, fee)
}

func (api *API) UpdateFee(c echo.Context) error {
	var patch models.FeePatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}
	fee, found, err := api.svc.Fees.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err, "update fee")
	}
	if !found {
		return notFound("Fee")
	}
	return c.JSON(http.StatusOK, fee)
}

func (api *API) DeleteFee(c echo.Context) error {
	deleted, err := api.svc.Fees.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "delete fee")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

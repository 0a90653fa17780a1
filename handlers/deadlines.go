package handlers

import (
	"net/http"

	"expedientes_app_go/models"
	"expedientes_app_go/query"

	"github.com/labstack/echo/v4"
)

// ListDeadlines returns deadlines with filtering, sorting and pagination.
// date_from/date_to bound the due date.
func (api *API) ListDeadlines(c echo.Context) error {
	dates, err := dateRange(c)
	if err != nil {
		return err
	}
	f := query.DeadlineFilter{
		Search:     c.QueryParam("search"),
		Statuses:   upperMulti(c, "status"),
		Priorities: upperMulti(c, "priority"),
		Kinds:      upperMulti(c, "kind"),
		CaseIDs:    multi(c, "case_id"),
		Due:        dates,
	}
	o := query.ResolveDeadlineOrder(order(c))
	page, limit := pagination(c)

	p, err := api.svc.Deadlines.ListPage(c.Request().Context(), f, o, page, limit)
	if err != nil {
		return serviceError(err, "fetch deadlines")
	}
	return listResponse(c, p, f.ActiveCount(), o)
}

func (api *API) DeadlineStats(c echo.Context) error {
	stats, err := api.svc.Deadlines.Stats(c.Request().Context())
	if err != nil {
		return serviceError(err, "compute deadline stats")
	}
	return c.JSON(http.StatusOK, stats)
}

func (api *API) GetDeadline(c echo.Context) error {
	d, found, err := api.svc.Deadlines.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch deadline")
	}
	if !found {
		return notFound("Deadline")
	}
	return c.JSON(http.StatusOK, d)
}

func (api *API) CreateDeadline(c echo.Context) error {
	var in models.DeadlineInput
	if err := bindInput(c, &in); err != nil {
		return err
	}
	d, err := api.svc.Deadlines.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err, "create deadline")
	}
	return c.JSON(http.StatusCreated, d)
}

func (api *API) UpdateDeadline(c echo.Context) error {
	var patch models.DeadlinePatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}
	d, found, err := api.svc.Deadlines.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err, "update deadline")
	}
	if !found {
		return notFound("Deadline")
	}
	return c.JSON(http.StatusOK, d)
}

func (api *API) DeleteDeadline(c echo.Context) error {
	deleted, err := api.svc.Deadlines.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "delete deadline")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

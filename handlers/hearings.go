package handlers

import (
	"net/http"

	"expedientes_app_go/models"
	"expedientes_app_go/query"

	"github.com/labstack/echo/v4"
)

// ListHearings returns hearings with filtering, sorting and pagination
func (api *API) ListHearings(c echo.Context) error {
	dates, err := dateRange(c)
	if err != nil {
		return err
	}
	f := query.HearingFilter{
		Search:   c.QueryParam("search"),
		Kinds:    upperMulti(c, "kind"),
		Statuses: upperMulti(c, "status"),
		Courts:   multi(c, "court"),
		Dates:    dates,
	}
	o := query.ResolveHearingOrder(order(c))
	page, limit := pagination(c)

	p, err := api.svc.Hearings.ListPage(c.Request().Context(), f, o, page, limit)
	if err != nil {
		return serviceError(err, "fetch hearings")
	}
	return listResponse(c, p, f.ActiveCount(), o)
}

func (api *API) GetHearing(c echo.Context) error {
	h, found, err := api.svc.Hearings.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch hearing")
	}
	if !found {
		return notFound("Hearing")
	}
	return c.JSON(http.StatusOK, h)
}

func (api *API) CreateHearing(c echo.Context) error {
	var in models.HearingInput
	if err := bindInput(c, &in); err != nil {
		return err
	}
	h, err := api.svc.Hearings.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err, "create hearing")
	}
	return c.JSON(http.StatusCreated, h)
}

func (api *API) UpdateHearing(c echo.Context) error {
	var patch models.HearingPatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}
	h, found, err := api.svc.Hearings.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err, "update hearing")
	}
	if !found {
		return notFound("Hearing")
	}
	return c.JSON(http.StatusOK, h)
}

func (api *API) DeleteHearing(c echo.Context) error {
	deleted, err := api.svc.Hearings.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "delete hearing")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

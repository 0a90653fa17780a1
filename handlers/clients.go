package handlers

import (
	"net/http"

	"expedientes_app_go/models"
	"expedientes_app_go/query"

	"github.com/labstack/echo/v4"
)

// ListClients returns clients in collection order, optionally filtered by search and kind
func (api *API) ListClients(c echo.Context) error {
	f := query.ClientFilter{
		Search: c.QueryParam("search"),
		Kinds:  upperMulti(c, "kind"),
	}
	page, limit := pagination(c)

	p, err := api.svc.Clients.ListPage(c.Request().Context(), f, page, limit)
	if err != nil {
		return serviceError(err, "fetch clients")
	}
	return listResponse(c, p, f.ActiveCount(), query.Order{})
}

func (api *API) GetClient(c echo.Context) error {
	client, found, err := api.svc.Clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch client")
	}
	if !found {
		return notFound("Client")
	}
	return c.JSON(http.StatusOK, client)
}

func (api *API) CreateClient(c echo.Context) error {
	var in models.ClientInput
	if err := bindInput(c, &in); err != nil {
		return err
	}
	client, err := api.svc.Clients.Create(c.Request().Context(), in)
	if err != nil {
		return serviceError(err, "create client")
	}
	return c.JSON(http.StatusCreated, client)
}

func (api *API) UpdateClient(c echo.Context) error {
	var patch models.ClientPatch
	if err := bindInput(c, &patch); err != nil {
		return err
	}
	client, found, err := api.svc.Clients.Update(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err, "update client")
	}
	if !found {
		return notFound("Client")
	}
	return c.JSON(http.StatusOK, client)
}

func (api *API) DeleteClient(c echo.Context) error {
	deleted, err := api.svc.Clients.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "delete client")
	}
	return c.JSON(http.StatusOK, map[string]bool{"deleted": deleted})
}

func (api *API) FeesByClient(c echo.Context) error {
	items, err := api.svc.Fees.ByClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch fees")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

func (api *API) InvoicesByClient(c echo.Context) error {
	items, err := api.svc.Invoices.ByClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch invoices")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": items})
}

package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (api *API) ListUsers(c echo.Context) error {
	users, err := api.svc.Users.List(c.Request().Context())
	if err != nil {
		return serviceError(err, "fetch users")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": users})
}

func (api *API) GetUser(c echo.Context) error {
	user, found, err := api.svc.Users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err, "fetch user")
	}
	if !found {
		return notFound("User")
	}
	return c.JSON(http.StatusOK, user)
}

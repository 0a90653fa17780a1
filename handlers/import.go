package handlers

import (
	"net/http"
	"strings"

	"expedientes_app_go/services"

	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DownloadImportTemplate serves the empty import workbook
func (api *API) DownloadImportTemplate(c echo.Context) error {
	buf, err := services.GenerateImportTemplate()
	if err != nil {
		return serviceError(err, "generate import template")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="importacion_expedientes.xlsx"`)
	return c.Blob(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportSpreadsheet imports the uploaded "file" form field. Cases without owners
// get the comma separated default_owner_ids form value.
func (api *API) ImportSpreadsheet(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "File is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to open file")
	}
	defer src.Close()

	var owners []string
	for _, id := range strings.Split(c.FormValue("default_owner_ids"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			owners = append(owners, id)
		}
	}

	result, err := services.ImportFromExcel(c.Request().Context(), api.repo, src, owners)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, result)
}

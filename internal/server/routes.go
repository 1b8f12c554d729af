package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, webH *handler.WebItemHandler, apiH *handler.APIItemHandler) {
	webH.RegisterRoutes(e)
	apiH.RegisterRoutes(e)
}

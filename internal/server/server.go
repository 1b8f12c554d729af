package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はechoを組み立てて返す。テストからも使う。
func New(webH *handler.WebItemHandler, apiH *handler.APIItemHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Renderer = NewRenderer()

	RegisterRoutes(e, webH, apiH)
	return e
}

// Start はサーバーを起動する。
func Start(addr string, webH *handler.WebItemHandler, apiH *handler.APIItemHandler) error {
	return New(webH, apiH).Start(addr)
}

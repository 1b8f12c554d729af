package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/labstack/echo/v4"
)

// HTML画面（一覧 + フォーム）。変更後は必ず一覧へ戻る。
type WebItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewWebItemHandler(uc *usecase.ItemUsecase) *WebItemHandler {
	return &WebItemHandler{uc: uc}
}

// 画面ルートを登録
func (h *WebItemHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.index)
	e.POST("/items", h.create)
	e.POST("/items/:id", h.update)
	e.POST("/items/:id/delete", h.delete)

	// 旧画面互換。削除リンクがGETのまま残っているページ向け。
	e.GET("/items/:id/delete", h.delete)
}

func (h *WebItemHandler) index(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return err
	}

	data := map[string]interface{}{
		"Items": items,
	}
	if f, ok := popFlash(c); ok {
		data["Flash"] = f
	}

	return c.Render(http.StatusOK, "index.html", data)
}

// フォーム値を読み取り数値へ変換する。変換失敗はvalidation扱い。
func formInput(c echo.Context) (usecase.ItemInput, error) {
	price, err := validator.ParsePrice(c.FormValue("price"))
	if err != nil {
		return usecase.ItemInput{}, err
	}

	stock, err := validator.ParseStock(c.FormValue("stock"))
	if err != nil {
		return usecase.ItemInput{}, err
	}

	return usecase.ItemInput{
		Name:  c.FormValue("name"),
		Size:  c.FormValue("size"),
		Price: price,
		Stock: stock,
	}, nil
}

// 失敗をdangerメッセージへ変換して一覧へ戻す。
func (h *WebItemHandler) redirectWithError(c echo.Context, err error) error {
	message := err.Error()
	if he, ok := usecase.AsHTTPError(err); ok {
		message = he.Message
	}

	setFlash(c, Flash{Severity: "danger", Message: message})
	return c.Redirect(http.StatusFound, "/")
}

func (h *WebItemHandler) create(c echo.Context) error {
	in, err := formInput(c)
	if err != nil {
		return h.redirectWithError(c, err)
	}

	if _, err := h.uc.CreateItem(c.Request().Context(), in); err != nil {
		return h.redirectWithError(c, err)
	}

	setFlash(c, Flash{Severity: "success", Message: "item created"})
	return c.Redirect(http.StatusFound, "/")
}

func (h *WebItemHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.redirectWithError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	// 存在しないidはフォームの中身を見る前にnot foundへ落とす
	if _, err := h.uc.GetItem(c.Request().Context(), id); err != nil {
		return h.redirectWithError(c, err)
	}

	in, err := formInput(c)
	if err != nil {
		return h.redirectWithError(c, err)
	}

	if _, err := h.uc.UpdateItem(c.Request().Context(), id, in); err != nil {
		return h.redirectWithError(c, err)
	}

	setFlash(c, Flash{Severity: "success", Message: "item updated"})
	return c.Redirect(http.StatusFound, "/")
}

func (h *WebItemHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return h.redirectWithError(c, usecase.NewHTTPError(http.StatusBadRequest, "invalid id"))
	}

	if err := h.uc.DeleteItem(c.Request().Context(), id); err != nil {
		return h.redirectWithError(c, err)
	}

	setFlash(c, Flash{Severity: "success", Message: "item deleted"})
	return c.Redirect(http.StatusFound, "/")
}

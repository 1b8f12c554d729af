package handler

import (
	"net/http"
	"strconv"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse は成功時の { message: string } の形。
type SuccessResponse struct {
	Message string `json:"message"`
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// /api/items のJSON API
type APIItemHandler struct {
	uc *usecase.ItemUsecase
}

// DI
func NewAPIItemHandler(uc *usecase.ItemUsecase) *APIItemHandler {
	return &APIItemHandler{uc: uc}
}

// JSONルートを登録
func (h *APIItemHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/items", h.list)
	api.GET("/items/:id", h.detail)
	api.POST("/items", h.create)
	api.PUT("/items/:id", h.update)
	api.DELETE("/items/:id", h.delete)
}

// ItemRequest は作成/更新のリクエストボディ。
type ItemRequest struct {
	Name  string  `json:"name"`
	Size  string  `json:"size"`
	Price float64 `json:"price"`
	Stock int64   `json:"stock"`
}

func (h *APIItemHandler) list(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (h *APIItemHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	item, err := h.uc.GetItem(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (h *APIItemHandler) create(c echo.Context) error {
	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err := h.uc.CreateItem(c.Request().Context(), usecase.ItemInput{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Message: "item created"})
}

func (h *APIItemHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	_, err = h.uc.UpdateItem(c.Request().Context(), id, usecase.ItemInput{
		Name:  req.Name,
		Size:  req.Size,
		Price: req.Price,
		Stock: req.Stock,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "item updated"})
}

func (h *APIItemHandler) delete(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteItem(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "item deleted"})
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ItemUsecase struct {
	itemRepo repo.ItemRepository
}

// DI
func NewItemUsecase(itemRepo repo.ItemRepository) *ItemUsecase {
	return &ItemUsecase{itemRepo: itemRepo}
}

// 作成/更新の入力DTO
type ItemInput struct {
	Name  string
	Size  string
	Price float64
	Stock int64
}

// 書き込み前の不変条件。画面APIどちらの経路でも同じものを通す。
func validateItemInput(in ItemInput) error {
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must not be negative")
	}
	return nil
}

func (u *ItemUsecase) ListItems(ctx context.Context) ([]model.Item, error) {
	items, err := u.itemRepo.List(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if items == nil {
		items = []model.Item{}
	}
	return items, nil
}

func (u *ItemUsecase) GetItem(ctx context.Context, itemID int64) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, nil
}

func (u *ItemUsecase) CreateItem(ctx context.Context, in ItemInput) (model.Item, error) {
	if err := validateItemInput(in); err != nil {
		return model.Item{}, err
	}

	item, err := u.itemRepo.Create(ctx, model.Item{
		Name:  in.Name,
		Size:  in.Size,
		Price: in.Price,
		Stock: in.Stock,
	})
	if err != nil {
		// ストア起因の失敗はメッセージをそのまま返す
		return model.Item{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return item, nil
}

func (u *ItemUsecase) UpdateItem(ctx context.Context, itemID int64, in ItemInput) (model.Item, error) {
	if itemID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	// 存在チェックはバリデーションより先（get_or_404相当）
	if _, err := u.itemRepo.FindByID(ctx, itemID); err != nil {
		if err == repo.ErrNotFound {
			return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if err := validateItemInput(in); err != nil {
		return model.Item{}, err
	}

	item := model.Item{
		ID:    itemID,
		Name:  in.Name,
		Size:  in.Size,
		Price: in.Price,
		Stock: in.Stock,
	}
	if err := u.itemRepo.Update(ctx, item); err != nil {
		if err == repo.ErrNotFound {
			return model.Item{}, NewHTTPError(http.StatusNotFound, "not found")
		}
		return model.Item{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return item, nil
}

func (u *ItemUsecase) DeleteItem(ctx context.Context, itemID int64) error {
	if itemID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	err := u.itemRepo.Delete(ctx, itemID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得・削除）だけを約束。
type ItemRepository interface {
	List(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id int64) (model.Item, error)

	Create(ctx context.Context, item model.Item) (model.Item, error)
	Update(ctx context.Context, item model.Item) error
	Delete(ctx context.Context, id int64) error
}

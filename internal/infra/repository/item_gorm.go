package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ItemGormRepository struct {
	db *gorm.DB
}

// DI
func NewItemGormRepository(db *gorm.DB) *ItemGormRepository {
	return &ItemGormRepository{db: db}
}

// 全件をid順で返す
func (r *ItemGormRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// IDで1件取得
func (r *ItemGormRepository) FindByID(ctx context.Context, id int64) (model.Item, error) {
	var item model.Item
	err := r.db.WithContext(ctx).First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 作成（idはDB採番）
func (r *ItemGormRepository) Create(ctx context.Context, item model.Item) (model.Item, error) {
	if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// 4項目をまとめて上書き
func (r *ItemGormRepository) Update(ctx context.Context, item model.Item) error {
	res := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"name":  item.Name,
		"size":  item.Size,
		"price": item.Price,
		"stock": item.Stock,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 物理削除（soft deleteなし）
func (r *ItemGormRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

package model

// Item は在庫1件（服）を表す。itemsテーブルに対応。
type Item struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"type:varchar(100);not null" json:"name"`
	Size  string  `gorm:"type:varchar(10);not null" json:"size"`
	Price float64 `gorm:"not null" json:"price"`
	Stock int64   `gorm:"not null" json:"stock"`
}

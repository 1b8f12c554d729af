package validator

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// priceが数値として読めない
	ErrPriceNotNumber = errors.New("price must be a number")

	// stockが整数として読めない
	ErrStockNotInteger = errors.New("stock must be an integer")
)

// フォーム入力（文字列）を数値へ変換する純関数群。
// 範囲チェック（price > 0, stock >= 0）はusecase側で行う。

func ParsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, ErrPriceNotNumber
	}
	return v, nil
}

func ParseStock(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, ErrStockNotInteger
	}
	return v, nil
}

package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	// 桁区切りはピリオド、小数点はカンマ
	assert.Equal(t, "Rp 10.000,00", FormatPrice(10000))
	assert.Equal(t, "Rp 1.234,50", FormatPrice(1234.5))
	assert.Equal(t, "Rp 99,99", FormatPrice(99.99))
}

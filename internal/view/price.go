package view

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// 表示専用。データ契約（JSONのprice）には使わない。
var printer = message.NewPrinter(language.Indonesian)

// FormatPrice は 10000 を "Rp 10.000,00" の形にする。
func FormatPrice(v float64) string {
	return printer.Sprintf("Rp %.2f", v)
}

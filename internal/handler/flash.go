package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "flash"

// Flash は次の画面で1回だけ表示するメッセージ（success | danger）。
type Flash struct {
	Severity string
	Message  string
}

// リダイレクト先で読めるようCookieに載せる。
func setFlash(c echo.Context, f Flash) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(f.Severity + "|" + f.Message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Cookieから読み取り、即失効させる（one-shot）。
func popFlash(c echo.Context) (Flash, bool) {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return Flash{}, false
	}

	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return Flash{}, false
	}

	severity, message, ok := strings.Cut(raw, "|")
	if !ok {
		return Flash{}, false
	}

	return Flash{Severity: severity, Message: message}, true
}

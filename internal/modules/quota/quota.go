// Package quota encodes the per-day free reading counter carried in a browser
// cookie. The counter is a soft, client-trust throttle: clearing the cookie
// resets it, and that is accepted product behavior rather than a gap to close.
package quota

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the browser cookie holding "date|count".
	CookieName = "na_free"

	maxCount  = 99
	cookieTTL = 48 * time.Hour
)

// Record is one day's usage count.
type Record struct {
	Date  string
	Count int
}

// TodayKey formats a calendar-day key the way the cookie stores it.
func TodayKey(now time.Time) string {
	return now.Format("2006-01-02")
}

// Decode parses a raw cookie value. A missing, malformed, or stale value
// decodes to a zero record for today; counts clamp to [0, 99].
func Decode(raw, today string) Record {
	zero := Record{Date: today, Count: 0}
	if raw == "" {
		return zero
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return zero
	}
	date, countStr, ok := strings.Cut(decoded, "|")
	if !ok || date != today {
		return zero
	}
	count, err := strconv.Atoi(strings.TrimSpace(countStr))
	if err != nil {
		return zero
	}
	return Record{Date: date, Count: clamp(count)}
}

// Encode renders a record back into the cookie value format.
func Encode(rec Record) string {
	return url.QueryEscape(rec.Date + "|" + strconv.Itoa(clamp(rec.Count)))
}

// FreeLeft returns how many free readings remain today; never negative.
func FreeLeft(count, limit int) int {
	left := limit - count
	if left < 0 {
		return 0
	}
	return left
}

// Read decodes the usage record from the request cookie.
func Read(c *gin.Context) Record {
	today := TodayKey(time.Now())
	raw, err := c.Cookie(CookieName)
	if err != nil {
		return Record{Date: today, Count: 0}
	}
	// gin already unescapes the cookie value; Decode handles both forms.
	return Decode(raw, today)
}

// Write stores the given count for today on the response. The 48h expiry
// horizon means a new day's read naturally resets the record. The cookie is
// deliberately not HttpOnly so the capture page can show the remaining count.
func Write(c *gin.Context, count int) {
	rec := Record{Date: TodayKey(time.Now()), Count: clamp(count)}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    Encode(rec),
		Path:     "/",
		Expires:  time.Now().Add(cookieTTL),
		SameSite: http.SameSiteLaxMode,
	})
}

func clamp(count int) int {
	if count < 0 {
		return 0
	}
	if count > maxCount {
		return maxCount
	}
	return count
}

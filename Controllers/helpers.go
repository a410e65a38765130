package Controllers

import (
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
)

const dateLayout = "2006-01-02"

var validate = validator.New()

// parseDate parses the YYYY-MM-DD form used by every date field on the API.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// reminderWindowDays resolves the configured reminder window, overridable
// per request via the ?days query parameter.
func reminderWindowDays(queryDays string) int {
	window := 7
	if env := os.Getenv("REMINDER_WINDOW_DAYS"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n >= 0 {
			window = n
		}
	}
	if queryDays != "" {
		if n, err := strconv.Atoi(queryDays); err == nil && n >= 0 {
			window = n
		}
	}
	return window
}

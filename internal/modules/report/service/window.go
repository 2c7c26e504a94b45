package service

import (
	"strings"
	"time"

	"anoa.com/casetrack/internal/modules/report/dto"
	"anoa.com/casetrack/pkg/apperror"
	"anoa.com/casetrack/pkg/timeutil"
)

// DefaultWindowDays is the look-back used when no bound is given.
const DefaultWindowDays = 90

// DefaultWindow spans whole days from now-90d through today.
func DefaultWindow(now time.Time) dto.Window {
	return dto.Window{
		From: timeutil.StartOfDay(now.AddDate(0, 0, -DefaultWindowDays)),
		To:   timeutil.EndOfDay(now),
	}
}

// ParseWindow resolves from/to. Date-only bounds cover the whole day.
// Unparsable bounds fall back to the default unless strict is set.
func ParseWindow(from, to string, now time.Time, strict bool) (dto.Window, error) {
	w := DefaultWindow(now)
	v := apperror.NewValidationError()

	if from = strings.TrimSpace(from); from != "" {
		t, dateOnly, err := timeutil.ParseBound(from)
		switch {
		case err != nil:
			v.Add("from", "from must be YYYY-MM-DD or an ISO datetime")
		case dateOnly:
			w.From = timeutil.StartOfDay(t)
		default:
			w.From = t
		}
	}

	if to = strings.TrimSpace(to); to != "" {
		t, dateOnly, err := timeutil.ParseBound(to)
		switch {
		case err != nil:
			v.Add("to", "to must be YYYY-MM-DD or an ISO datetime")
		case dateOnly:
			w.To = timeutil.EndOfDay(t)
		default:
			w.To = t
		}
	}

	if w.From.After(w.To) {
		if strict {
			v.Add("from", "from must not be after to")
		} else {
			w.From, w.To = w.To, w.From
		}
	}

	if strict {
		if err := v.Err(); err != nil {
			return dto.Window{}, err
		}
	}
	return w, nil
}

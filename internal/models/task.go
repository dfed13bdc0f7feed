package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

type RepeatType string

const (
	RepeatNone     RepeatType = ""
	RepeatDaily    RepeatType = "daily"
	RepeatWeekly   RepeatType = "weekly"
	RepeatMonthly  RepeatType = "monthly"
	RepeatBiweekly RepeatType = "biweekly"
)

func (r RepeatType) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly, RepeatBiweekly:
		return true
	default:
		return false
	}
}

// WeekDays holds weekday indices (0=Sunday..6=Saturday). It is stored as a
// comma-joined string but marshals to JSON as a plain array.
type WeekDays []int

func (w WeekDays) Contains(day int) bool {
	for _, d := range w {
		if d == day {
			return true
		}
	}
	return false
}

func (w WeekDays) Value() (driver.Value, error) {
	if len(w) == 0 {
		return nil, nil
	}
	parts := make([]string, 0, len(w))
	for _, d := range w {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ","), nil
}

func (w *WeekDays) Scan(src any) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*w = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("models: cannot scan %T into WeekDays", src)
	}

	if raw == "" {
		*w = nil
		return nil
	}

	days := make(WeekDays, 0, 7)
	for _, part := range strings.Split(raw, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	*w = days
	return nil
}

type Task struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id,omitempty"`
	UserID        uuid.UUID  `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Title         string     `json:"title,omitempty"`
	IsRecurring   bool       `json:"is_recurring"`
	RepeatType    RepeatType `json:"repeat_type,omitempty"`
	WeekDays      WeekDays   `gorm:"type:text" json:"week_days,omitempty"`
	MonthDay      int        `json:"month_day,omitempty"`
	BiweeklyStart *time.Time `json:"biweekly_start,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
	Completed     bool       `json:"completed"`
	LastCompleted *time.Time `json:"last_completed,omitempty"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at,omitempty"`
}

// DueOn reports whether the task belongs in the "today" bucket at the given
// time. All date comparisons are truncated to local midnight.
//
// One-off tasks are due until completed, once their due date (if any) has
// arrived. Recurring tasks are suppressed for the rest of the day once
// LastCompleted falls on or after today's midnight; Completed is not
// consulted for them.
func (t *Task) DueOn(now time.Time) bool {
	today := startOfDay(now)

	if !t.IsRecurring {
		if t.Completed {
			return false
		}
		if t.DueDate == nil {
			return true
		}
		return !startOfDay(*t.DueDate).After(today)
	}

	if t.LastCompleted != nil && !t.LastCompleted.Before(today) {
		return false
	}

	switch t.RepeatType {
	case RepeatDaily:
		return true
	case RepeatWeekly:
		return t.WeekDays.Contains(int(now.Weekday()))
	case RepeatMonthly:
		return now.Day() == t.MonthDay
	case RepeatBiweekly:
		if t.BiweeklyStart == nil {
			return false
		}
		days := daysBetween(*t.BiweeklyStart, now)
		return days >= 0 && days%14 == 0
	default:
		return false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts whole calendar days from a to b, normalized to UTC so
// DST transitions cannot skew the count.
func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bu.Sub(au) / (24 * time.Hour))
}

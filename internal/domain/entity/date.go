package entity

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/errs"
)

// CivilDateLayout is the layout used for last-fired stamps.
const CivilDateLayout = "2006-01-02"

var (
	monthDayPattern = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	clockPattern    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// MonthDay is a calendar day without a year.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD". The day must exist in at least a leap year,
// so "02-29" is accepted and "02-30" or "13-01" are rejected.
func ParseMonthDay(s string) (MonthDay, error) {
	md, ok := parseMonthDay(strings.TrimSpace(s))
	if !ok {
		return MonthDay{}, errs.NewValidationError(
			fmt.Sprintf("invalid date %q, use MM-DD (e.g. 12-31 for December 31st)", s), errs.ErrInvalidDate)
	}
	return md, nil
}

func parseMonthDay(s string) (MonthDay, bool) {
	m := monthDayPattern.FindStringSubmatch(s)
	if m == nil {
		return MonthDay{}, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	md := MonthDay{Month: time.Month(month), Day: day}
	return md, md.Valid()
}

// Valid reports whether md names a real calendar day in a leap year.
func (md MonthDay) Valid() bool {
	if md.Month < time.January || md.Month > time.December || md.Day < 1 {
		return false
	}
	return md.Day <= daysIn(md.Month, 2000)
}

// Matches reports whether t falls on md.
func (md MonthDay) Matches(t time.Time) bool {
	return t.Month() == md.Month && t.Day() == md.Day
}

// At returns md in the given year at hour:minute in loc. ok is false when the
// day does not exist in that year (February 29th outside leap years).
func (md MonthDay) At(year, hour, minute int, loc *time.Location) (t time.Time, ok bool) {
	if md.Day > daysIn(md.Month, year) {
		return time.Time{}, false
	}
	return time.Date(year, md.Month, md.Day, hour, minute, 0, 0, loc), true
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}

func (md MonthDay) MarshalText() ([]byte, error) {
	return []byte(md.String()), nil
}

func (md *MonthDay) UnmarshalText(b []byte) error {
	parsed, err := ParseMonthDay(string(b))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

// DateTime is a month, day, hour and minute without a year.
type DateTime struct {
	MonthDay
	Hour   int
	Minute int
}

// ParseDateTime parses a "MM-DD" date and an "HH:MM" (24h) time.
func ParseDateTime(date, clock string) (DateTime, error) {
	invalid := errs.NewValidationError(
		fmt.Sprintf("invalid date/time %q, use MM-DD HH:MM (e.g. 12-31 15:00 for December 31st at 3 PM)",
			strings.TrimSpace(date+" "+clock)), errs.ErrInvalidDateTime)

	md, ok := parseMonthDay(strings.TrimSpace(date))
	if !ok {
		return DateTime{}, invalid
	}

	m := clockPattern.FindStringSubmatch(strings.TrimSpace(clock))
	if m == nil {
		return DateTime{}, invalid
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return DateTime{}, invalid
	}

	return DateTime{MonthDay: md, Hour: hour, Minute: minute}, nil
}

// ParseDateTimeString parses the persisted "MM-DD HH:MM" form.
func ParseDateTimeString(s string) (DateTime, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return DateTime{}, errs.NewValidationError(
			fmt.Sprintf("invalid date/time %q, use MM-DD HH:MM", s), errs.ErrInvalidDateTime)
	}
	return ParseDateTime(parts[0], parts[1])
}

// Matches reports whether t falls within the minute named by dt.
func (dt DateTime) Matches(t time.Time) bool {
	return dt.MonthDay.Matches(t) && t.Hour() == dt.Hour && t.Minute() == dt.Minute
}

// In returns dt resolved in the given year. ok is false when the day does
// not exist in that year.
func (dt DateTime) In(year int, loc *time.Location) (time.Time, bool) {
	return dt.MonthDay.At(year, dt.Hour, dt.Minute, loc)
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%s %02d:%02d", dt.MonthDay, dt.Hour, dt.Minute)
}

func (dt DateTime) MarshalText() ([]byte, error) {
	return []byte(dt.String()), nil
}

func (dt *DateTime) UnmarshalText(b []byte) error {
	parsed, err := ParseDateTimeString(string(b))
	if err != nil {
		return err
	}
	*dt = parsed
	return nil
}

// CivilDate formats the calendar day of t, in t's location.
func CivilDate(t time.Time) string {
	return t.Format(CivilDateLayout)
}

// TruncateToMinute drops seconds and below, keeping t's location.
func TruncateToMinute(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysIn(month time.Month, year int) int {
	switch month {
	case time.February:
		if isLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

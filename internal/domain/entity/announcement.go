package entity

import (
	"strings"
	"time"
)

// Category distinguishes the two kinds of announcement.
type Category string

const (
	CategoryYearly Category = "yearly"
	CategoryOnce   Category = "once"
)

// ParseCategory accepts "yearly" or "once", case-insensitively.
func ParseCategory(s string) (Category, bool) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryYearly:
		return CategoryYearly, true
	case CategoryOnce:
		return CategoryOnce, true
	default:
		return "", false
	}
}

// maxYearsAhead bounds next-occurrence searches; leap days repeat within 8 years.
const maxYearsAhead = 8

// Announcement holds the fields shared by both categories.
type Announcement struct {
	ID      string
	Message string
	AddedBy string
	AddedAt time.Time
}

// Yearly fires every year on Date and is never removed automatically.
type Yearly struct {
	Announcement
	Date MonthDay
	// LastFired is the civil date (YYYY-MM-DD) of the last delivery, empty if never.
	LastFired string
}

// NextOccurrence returns midnight of the next Date that is not before now.
func (y Yearly) NextOccurrence(now time.Time) time.Time {
	for i := 0; i <= maxYearsAhead; i++ {
		t, ok := y.Date.At(now.Year()+i, 0, 0, now.Location())
		if ok && !t.Before(now) {
			return t
		}
	}
	return time.Time{}
}

// FiredOn reports whether the item was already delivered on now's calendar day.
func (y Yearly) FiredOn(now time.Time) bool {
	return y.LastFired != "" && y.LastFired == CivilDate(now)
}

// Once fires a single time and is then removed.
type Once struct {
	Announcement
	At DateTime
}

// NextOccurrence returns the next instant matching At that is not before the
// minute now falls in. Past targets wrap to the following year.
func (o Once) NextOccurrence(now time.Time) time.Time {
	minute := TruncateToMinute(now)
	for i := 0; i <= maxYearsAhead; i++ {
		t, ok := o.At.In(now.Year()+i, now.Location())
		if ok && !t.Before(minute) {
			return t
		}
	}
	return time.Time{}
}

// Collection is the full set of announcements in insertion order.
type Collection struct {
	Yearly []Yearly
	Once   []Once
}

// Clone returns a deep copy of c.
func (c Collection) Clone() Collection {
	out := Collection{
		Yearly: make([]Yearly, len(c.Yearly)),
		Once:   make([]Once, len(c.Once)),
	}
	copy(out.Yearly, c.Yearly)
	copy(out.Once, c.Once)
	return out
}

// Len returns the number of items in the given category.
func (c Collection) Len(category Category) int {
	switch category {
	case CategoryYearly:
		return len(c.Yearly)
	case CategoryOnce:
		return len(c.Once)
	default:
		return 0
	}
}

func (c Collection) IsEmpty() bool {
	return len(c.Yearly) == 0 && len(c.Once) == 0
}

// Firing is one announcement that is due on the current tick.
type Firing struct {
	Category Category
	ID       string
	Label    string
	Message  string
}

// ListItem is one announcement as shown by a listing.
type ListItem struct {
	Index     int
	Category  Category
	ID        string
	Label     string
	Message   string
	AddedBy   string
	AddedAt   time.Time
	Next      time.Time
	Remaining time.Duration
}

// Countdown splits the remaining time into whole days, hours and minutes.
func (li ListItem) Countdown() (days, hours, minutes int) {
	d := li.Remaining
	if d < 0 {
		d = 0
	}
	days = int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours = int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes = int(d / time.Minute)
	return days, hours, minutes
}

// Listing is the snapshot returned to the command layer.
type Listing struct {
	Yearly []ListItem
	Once   []ListItem
}

func (l Listing) IsEmpty() bool {
	return len(l.Yearly) == 0 && len(l.Once) == 0
}

// TickResult summarizes one scheduler tick.
type TickResult struct {
	Fired     int
	Delivered int
	Failed    int
}

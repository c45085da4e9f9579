package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/google/uuid"
)

// LegacyTimeLayout is the added_at layout written by older versions of the bot.
const LegacyTimeLayout = "2006-01-02 15:04:05"

// Document is the persisted form of the whole collection.
type Document struct {
	Yearly []YearlyRecord `json:"yearly"`
	Once   []OnceRecord   `json:"once"`
}

type YearlyRecord struct {
	ID        string    `json:"id" db:"id"`
	Date      string    `json:"date" db:"date"` // MM-DD
	Message   string    `json:"message" db:"message"`
	AddedBy   string    `json:"added_by" db:"added_by"`
	AddedAt   Timestamp `json:"added_at" db:"added_at"`
	LastFired string    `json:"last_fired,omitempty" db:"last_fired"` // YYYY-MM-DD
}

type OnceRecord struct {
	ID       string    `json:"id" db:"id"`
	DateTime string    `json:"datetime" db:"datetime"` // MM-DD HH:MM
	Message  string    `json:"message" db:"message"`
	AddedBy  string    `json:"added_by" db:"added_by"`
	AddedAt  Timestamp `json:"added_at" db:"added_at"`
}

// Timestamp is written as RFC 3339 in UTC. Reads also accept LegacyTimeLayout.
type Timestamp struct {
	time.Time
}

func (t Timestamp) String() string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTimestamp accepts RFC 3339, the legacy layout (read as UTC) or an empty string.
func ParseTimestamp(s string) (Timestamp, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Timestamp{t.UTC()}, nil
	}
	t, err := time.Parse(LegacyTimeLayout, s)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid added_at %q", s)
	}
	return Timestamp{t.UTC()}, nil
}

// FromCollection converts the domain collection to its persisted form.
func FromCollection(c entity.Collection) Document {
	doc := Document{
		Yearly: make([]YearlyRecord, 0, len(c.Yearly)),
		Once:   make([]OnceRecord, 0, len(c.Once)),
	}

	for _, y := range c.Yearly {
		doc.Yearly = append(doc.Yearly, YearlyRecord{
			ID:        y.ID,
			Date:      y.Date.String(),
			Message:   y.Message,
			AddedBy:   y.AddedBy,
			AddedAt:   Timestamp{y.AddedAt},
			LastFired: y.LastFired,
		})
	}

	for _, o := range c.Once {
		doc.Once = append(doc.Once, OnceRecord{
			ID:       o.ID,
			DateTime: o.At.String(),
			Message:  o.Message,
			AddedBy:  o.AddedBy,
			AddedAt:  Timestamp{o.AddedAt},
		})
	}

	return doc
}

// Collection converts the document back to the domain collection. Records
// without an id get a new one. Any invalid record fails the whole document.
func (d Document) Collection() (entity.Collection, error) {
	c := entity.Collection{
		Yearly: make([]entity.Yearly, 0, len(d.Yearly)),
		Once:   make([]entity.Once, 0, len(d.Once)),
	}

	for i, r := range d.Yearly {
		y, err := r.Entity()
		if err != nil {
			return entity.Collection{}, fmt.Errorf("yearly[%d]: %w", i, err)
		}
		c.Yearly = append(c.Yearly, y)
	}

	for i, r := range d.Once {
		o, err := r.Entity()
		if err != nil {
			return entity.Collection{}, fmt.Errorf("once[%d]: %w", i, err)
		}
		c.Once = append(c.Once, o)
	}

	return c, nil
}

func (r YearlyRecord) Entity() (entity.Yearly, error) {
	md, err := entity.ParseMonthDay(r.Date)
	if err != nil {
		return entity.Yearly{}, err
	}
	if r.LastFired != "" {
		if _, err := time.Parse(entity.CivilDateLayout, r.LastFired); err != nil {
			return entity.Yearly{}, fmt.Errorf("invalid last_fired %q", r.LastFired)
		}
	}

	return entity.Yearly{
		Announcement: announcement(r.ID, r.Message, r.AddedBy, r.AddedAt),
		Date:         md,
		LastFired:    r.LastFired,
	}, nil
}

func (r OnceRecord) Entity() (entity.Once, error) {
	dt, err := entity.ParseDateTimeString(r.DateTime)
	if err != nil {
		return entity.Once{}, err
	}

	return entity.Once{
		Announcement: announcement(r.ID, r.Message, r.AddedBy, r.AddedAt),
		At:           dt,
	}, nil
}

func announcement(id, message, addedBy string, addedAt Timestamp) entity.Announcement {
	if id == "" {
		id = uuid.NewString()
	}
	return entity.Announcement{
		ID:      id,
		Message: message,
		AddedBy: addedBy,
		AddedAt: addedAt.Time,
	}
}

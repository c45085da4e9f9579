package service

import (
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
)

// DueSet is the outcome of evaluating a collection at one instant.
type DueSet struct {
	// Fire lists what must be delivered, yearly items first, each group in
	// insertion order.
	Fire []entity.Firing
	// Yearly holds indices into Collection.Yearly to stamp as fired today.
	Yearly []int
	// Remove holds indices into Collection.Once in descending order.
	Remove []int
}

func (d DueSet) IsEmpty() bool {
	return len(d.Fire) == 0
}

// DueNow returns the announcements due at now. now must already be in the
// time zone announcements are evaluated in.
//
// A yearly item is due on its month/day unless it was already fired on that
// calendar day. A once item is due during the minute named by its date-time.
func DueNow(c entity.Collection, now time.Time) DueSet {
	var due DueSet

	for i, y := range c.Yearly {
		if !y.Date.Matches(now) || y.FiredOn(now) {
			continue
		}
		due.Yearly = append(due.Yearly, i)
		due.Fire = append(due.Fire, entity.Firing{
			Category: entity.CategoryYearly,
			ID:       y.ID,
			Label:    y.Date.String(),
			Message:  y.Message,
		})
	}

	for i, o := range c.Once {
		if !o.At.Matches(now) {
			continue
		}
		due.Remove = append(due.Remove, i)
		due.Fire = append(due.Fire, entity.Firing{
			Category: entity.CategoryOnce,
			ID:       o.ID,
			Label:    o.At.String(),
			Message:  o.Message,
		})
	}

	// pop from the back so earlier indices stay valid
	for l, r := 0, len(due.Remove)-1; l < r; l, r = l+1, r-1 {
		due.Remove[l], due.Remove[r] = due.Remove[r], due.Remove[l]
	}

	return due
}

// Apply records d on c: yearly items get today's stamp and once items are removed.
func (d DueSet) Apply(c *entity.Collection, now time.Time) {
	stamp := entity.CivilDate(now)
	for _, i := range d.Yearly {
		c.Yearly[i].LastFired = stamp
	}
	for _, i := range d.Remove {
		c.Once = append(c.Once[:i], c.Once[i+1:]...)
	}
}

package domain

import "time"

// DefaultTickInterval is how often the scheduler checks for due announcements.
const DefaultTickInterval = time.Minute

// DefaultDrainTimeout bounds how long shutdown waits for the current tick.
const DefaultDrainTimeout = 10 * time.Second

// Message templates posted to the announcement channel.
const (
	YearlyMessageFormat = "📣 *Yearly announcement:* %s"
	OnceMessageFormat   = "📣 *Announcement:* %s"
	TestMessage         = "🔧 This is a test message from the announcement bot!"
	OnlineMessage       = "🤖 The announcement bot is online and ready."
)

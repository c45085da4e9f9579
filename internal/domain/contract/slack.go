package contract

import (
	"context"

	"github.com/slack-go/slack"
)

//go:generate mockgen -source=slack.go -destination=../../../mocks/slack_mock.go -package=mocks

// SlackClient defines the Slack operations the bot needs.
// This allows mocking in tests while keeping the real implementation simple.
type SlackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

// Notifier delivers rendered text to the announcement destination.
type Notifier interface {
	Deliver(ctx context.Context, text string) error
}

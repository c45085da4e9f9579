// Package notifier posts rendered announcements to Slack.
package notifier

import (
	"context"
	"strings"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/time/rate"
)

// Slack posts each message to one channel. Posts are paced by a token
// bucket so a burst of due announcements stays under Slack's
// per-channel rate limit.
type Slack struct {
	client    contract.SlackClient
	channelID string
	limiter   *rate.Limiter
	log       zerolog.Logger
}

// NewSlack returns a notifier for channelID allowing perSecond posts per
// second. perSecond <= 0 disables pacing.
func NewSlack(client contract.SlackClient, channelID string, perSecond float64, log zerolog.Logger) *Slack {
	limit := rate.Inf
	burst := 1
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
		burst = max(1, int(perSecond))
	}

	return &Slack{
		client:    client,
		channelID: channelID,
		limiter:   rate.NewLimiter(limit, burst),
		log:       log.With().Str("component", "notifier").Str("channel", channelID).Logger(),
	}
}

func (s *Slack) Deliver(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return errs.NewDeliveryError("refusing to post an empty message", nil)
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return errs.NewDeliveryError("rate limiter aborted", err)
	}

	_, ts, err := s.client.PostMessageContext(ctx, s.channelID,
		slack.MsgOptionText(text, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return errs.NewDeliveryError("failed to post message to Slack", err)
	}

	s.log.Debug().Str("ts", ts).Msg("message posted")
	return nil
}

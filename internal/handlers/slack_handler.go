package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/diegoclair/slack-announcement-bot/internal/domain/contract"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/entity"
	"github.com/diegoclair/slack-announcement-bot/internal/errs"
	slackcmd "github.com/diegoclair/slack-announcement-bot/internal/slack"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

const maxBodyBytes = 64 << 10

type SlackHandler struct {
	service       contract.AnnouncementService
	signingSecret string
	log           zerolog.Logger
}

func New(service contract.AnnouncementService, signingSecret string, log zerolog.Logger) *SlackHandler {
	return &SlackHandler{
		service:       service,
		signingSecret: signingSecret,
		log:           log.With().Str("component", "slack_handler").Logger(),
	}
}

// Routes registers the handler endpoints on mux.
func (h *SlackHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /slack/commands", h.HandleSlashCommand)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	// Verify Slack signature
	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		h.log.Warn().Err(err).Msg("slash command rejected")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		h.log.Warn().Err(err).Msg("slash command signature mismatch")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	// Parse command
	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Parse our command
	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		var usageErr *slackcmd.UsageError
		if errors.As(err, &usageErr) {
			h.respondWithError(w, "Usage: "+usageErr.Usage)
			return
		}
		h.respondWithError(w, fmt.Sprintf("%s. Use `/announce help` to see the available commands.", capitalize(err.Error())))
		return
	}

	h.log.Debug().
		Str("command", string(cmd.Type)).
		Str("user_id", s.UserID).
		Str("channel_id", s.ChannelID).
		Msg("slash command received")

	// Handle command
	response := h.handleCommand(r.Context(), cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdYearly:
		return h.handleAddYearly(ctx, cmd, slashCmd)
	case slackcmd.CmdOnce:
		return h.handleAddOnce(ctx, cmd, slashCmd)
	case slackcmd.CmdList:
		return h.handleList(ctx)
	case slackcmd.CmdDelete:
		return h.handleDelete(ctx, cmd)
	case slackcmd.CmdTest:
		return h.handleTest(ctx)
	case slackcmd.CmdHelp:
		return h.handleHelp()
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleAddYearly(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	y, err := h.service.AddYearly(ctx, cmd.Date, cmd.Message, slashCmd.UserID)
	if err != nil {
		return h.serviceError("add the yearly announcement", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Yearly announcement on %s added!", y.Date),
	}
}

func (h *SlackHandler) handleAddOnce(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	o, err := h.service.AddOnce(ctx, cmd.Date, cmd.Time, cmd.Message, slashCmd.UserID)
	if err != nil {
		return h.serviceError("add the one-time announcement", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ One-time announcement on %s added!", o.At),
	}
}

func (h *SlackHandler) handleList(ctx context.Context) *slack.Msg {
	listing, err := h.service.List(ctx)
	if err != nil {
		return h.serviceError("list announcements", err)
	}

	if listing.IsEmpty() {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         "No announcements yet. Use `/announce help` to add one.",
		}
	}

	var b strings.Builder
	writeSection(&b, "📅 Yearly announcements", listing.Yearly)
	writeSection(&b, "⏰ One-time announcements", listing.Once)

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         strings.TrimSpace(b.String()),
	}
}

func writeSection(b *strings.Builder, title string, items []entity.ListItem) {
	if len(items) == 0 {
		return
	}

	fmt.Fprintf(b, "*%s:*\n", title)
	for _, item := range items {
		days, hours, minutes := item.Countdown()
		fmt.Fprintf(b, "%d. *%s*: %s\n", item.Index, item.Label, item.Message)
		fmt.Fprintf(b, "    Sends in *%d days %d hours %d minutes*", days, hours, minutes)
		if item.AddedBy != "" {
			fmt.Fprintf(b, " (added by %s)", mention(item.AddedBy))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func (h *SlackHandler) handleDelete(ctx context.Context, cmd *slackcmd.Command) *slack.Msg {
	message, err := h.service.DeleteAt(ctx, cmd.Category, cmd.Index)
	if err != nil {
		return h.serviceError("delete the announcement", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         fmt.Sprintf("✅ Announcement '%s' deleted!", message),
	}
}

func (h *SlackHandler) handleTest(ctx context.Context) *slack.Msg {
	if err := h.service.SendTest(ctx); err != nil {
		return h.serviceError("send the test message", err)
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Test message sent to the announcement channel!",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// serviceError turns a service error into a user facing reply. Validation
// errors are shown as is; anything else is logged and summarized.
func (h *SlackHandler) serviceError(action string, err error) *slack.Msg {
	if errs.IsValidation(err) {
		return h.createErrorResponse(capitalize(errs.Message(err)))
	}

	h.log.Error().Err(err).Str("code", errs.Code(err)).Msgf("failed to %s", action)

	switch errs.Code(err) {
	case errs.CodePersistence:
		return h.createErrorResponse(fmt.Sprintf("Could not %s: storage is unavailable, please try again.", action))
	case errs.CodeDelivery:
		return h.createErrorResponse(fmt.Sprintf("Could not %s: the announcement channel is unreachable.", action))
	default:
		return h.createErrorResponse(fmt.Sprintf("Could not %s.", action))
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// slackUserID matches member IDs; older documents hold display names instead.
var slackUserID = regexp.MustCompile(`^[UW][A-Z0-9]{8,}$`)

// mention renders a Slack user ID as a mention and anything else as is.
func mention(addedBy string) string {
	if slackUserID.MatchString(addedBy) {
		return "<@" + addedBy + ">"
	}
	return addedBy
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

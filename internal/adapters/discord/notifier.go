package discord

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/bwmarrin/discordgo"

	"localestatus/internal/domain/entities"
	"localestatus/internal/ports/output"
	pkgdiscord "localestatus/pkg/discord"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier posts the run summary to a Discord webhook.
type Notifier struct {
	session   *discordgo.Session
	webhookID string
	token     string
}

// NewNotifier creates a Notifier from a webhook URL of the form
// https://discord.com/api/webhooks/<id>/<token>.
func NewNotifier(webhookURL string) (*Notifier, error) {
	id, token, err := ParseWebhookURL(webhookURL)
	if err != nil {
		return nil, err
	}
	// Webhook execution is authenticated by the token in the URL; the
	// session itself carries no bot token.
	s, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	return &Notifier{
		session:   s,
		webhookID: id,
		token:     token,
	}, nil
}

func (n *Notifier) NotifyRun(ctx context.Context, report *entities.Report) error {
	_, err := n.session.WebhookExecute(n.webhookID, n.token, false, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildRunEmbed(report)},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("webhook execute: %w", err)
	}
	return nil
}

// ParseWebhookURL extracts the webhook id and token from a Discord webhook URL.
func ParseWebhookURL(raw string) (id, token string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("discord: webhook URL invalide: %w", err)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "webhooks" && parts[i+1] != "" && parts[i+2] != "" {
			return parts[i+1], parts[i+2], nil
		}
	}
	return "", "", fmt.Errorf("discord: webhook URL invalide (%q): attendu .../webhooks/<id>/<token>", raw)
}

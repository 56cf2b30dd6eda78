package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/Atsu2017-hub/web-ramen/internal/pkg/config"
	"github.com/Atsu2017-hub/web-ramen/internal/pkg/errs"
	"github.com/Atsu2017-hub/web-ramen/internal/usecase/commands"

	"github.com/slack-go/slack"
)

// SlackNotifier posts reservation events to an incoming webhook. When no
// webhook URL is configured it silently drops every notice, which keeps
// local development working without a Slack workspace.
type SlackNotifier struct {
	webhookURL string
}

func NewSlackNotifier(cfg config.SlackConfig) *SlackNotifier {
	return &SlackNotifier{webhookURL: cfg.WebhookURL}
}

func (n *SlackNotifier) NotifyConfirmed(ctx context.Context, notice commands.ReservationNotice) error {
	return n.post(ctx, "新しい予約が入りました", notice)
}

func (n *SlackNotifier) NotifyCancelled(ctx context.Context, notice commands.ReservationNotice) error {
	return n.post(ctx, "予約がキャンセルされました", notice)
}

func (n *SlackNotifier) post(ctx context.Context, title string, notice commands.ReservationNotice) error {
	if n.webhookURL == "" {
		return nil
	}

	msg := &slack.WebhookMessage{
		Text:   fmt.Sprintf("%s: %s %s (%d名)", title, notice.Date, notice.Time, notice.PartySize),
		Blocks: buildBlocks(title, notice),
	}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return errs.Wrap(err, "slack: failed to post webhook")
	}
	return nil
}

func buildBlocks(title string, notice commands.ReservationNotice) *slack.Blocks {
	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*予約者:*\n%s", notice.UserName), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*メール:*\n%s", notice.UserEmail), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*日付:*\n%s", notice.Date), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*時間:*\n%s", notice.Time), false, false),
		slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*人数:*\n%d名", notice.PartySize), false, false),
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
		slack.NewSectionBlock(nil, fields, nil),
	}

	if len(notice.Items) > 0 {
		var b strings.Builder
		b.WriteString("*注文メニュー:*\n")
		var total int64
		for _, it := range notice.Items {
			fmt.Fprintf(&b, "• %s × %d (¥%d)\n", it.MenuName, it.Quantity, it.Price*int64(it.Quantity))
			total += it.Price * int64(it.Quantity)
		}
		fmt.Fprintf(&b, "*合計: ¥%d*", total)
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, b.String(), false, false), nil, nil,
		))
	}

	if notice.Requests != nil && *notice.Requests != "" {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, fmt.Sprintf("*特記事項:*\n%s", *notice.Requests), false, false),
			nil, nil,
		))
	}

	return &slack.Blocks{BlockSet: blocks}
}

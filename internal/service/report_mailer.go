package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// mailDialer is satisfied by *gomail.Dialer.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type ReportMailer struct {
	sender string
	dialer mailDialer
}

func CreateReportMailer(conf config.SMTPConfig) *ReportMailer {
	return &ReportMailer{
		sender: conf.Sender,
		dialer: gomail.NewDialer(conf.Host, conf.Port, conf.Username, conf.Password),
	}
}

// SendCategoryAudit mails a plain text rendering of the audit.
func (m *ReportMailer) SendCategoryAudit(ctx context.Context, audit dto.CategoryAudit, recipients []string, at time.Time) error {
	if m.sender == "" {
		return fmt.Errorf("REPORT_SENDER: %w", errs.ErrMissingSetting)
	}
	if len(recipients) == 0 {
		return errs.ErrClient
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.sender)
	message.SetHeader("To", recipients...)
	message.SetHeader("Subject", fmt.Sprintf("Category audit %s: %d of %d products need attention",
		at.Format("2006-01-02"), len(audit.NonCanonical), audit.Total))
	message.SetBody("text/plain", RenderCategoryAudit(audit))

	// gomail has no context support; a cancelled run skips the dial.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(message); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "SendCategoryAudit").Msg("")
		return err
	}

	return nil
}

func RenderCategoryAudit(audit dto.CategoryAudit) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Products scanned: %d\n\n", audit.Total)
	b.WriteString("Products per category:\n")
	for _, c := range audit.ByCategory {
		category := c.Category
		if category == "" {
			category = "(empty)"
		}
		fmt.Fprintf(&b, "  %-28s %d\n", category, c.Count)
	}

	fmt.Fprintf(&b, "\nNon-canonical products: %d\n", len(audit.NonCanonical))
	for _, c := range audit.NonCanonical {
		fmt.Fprintf(&b, "  %s %q: %s/%s -> %s/%s\n", c.ProductID, c.Name,
			c.FromCategory, c.FromSubCategory, c.ToCategory, c.ToSubCategory)
	}

	if len(audit.Undecodable) > 0 {
		fmt.Fprintf(&b, "\nUnreadable products: %s\n", strings.Join(audit.Undecodable, ", "))
	}

	return b.String()
}

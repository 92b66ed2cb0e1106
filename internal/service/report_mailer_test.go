package service

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/alimikegami/point-of-sales/store-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/store-admin/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

var sampleAudit = dto.CategoryAudit{
	Total: 3,
	ByCategory: []dto.CategoryCount{
		{Category: "Fashion", Count: 2},
		{Category: "Electronics", Count: 1},
	},
	NonCanonical: []dto.CategoryCorrection{
		{ProductID: "p1", Name: "Floral Dress", FromCategory: "Fashion", FromSubCategory: "General", ToCategory: "Women's Fashion", ToSubCategory: "Apparel"},
	},
}

type recordingDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *recordingDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSendCategoryAudit(t *testing.T) {
	dialer := &recordingDialer{}
	mailer := &ReportMailer{sender: "reports@store.example", dialer: dialer}

	err := mailer.SendCategoryAudit(context.Background(), sampleAudit, []string{"ops@store.example"}, fixedNow)
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)
	sent := dialer.sent[0]

	assert.Equal(t, []string{"ops@store.example"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Category audit 2024-11-05: 1 of 3 products need attention"}, sent.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = sent.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Fashion/General -> Women's Fashion/Apparel")
}

func TestSendCategoryAuditErrors(t *testing.T) {
	failing := &ReportMailer{sender: "reports@store.example", dialer: &recordingDialer{err: errors.New("dial tcp: refused")}}
	assert.Error(t, failing.SendCategoryAudit(context.Background(), sampleAudit, []string{"ops@store.example"}, fixedNow))

	noSender := &ReportMailer{dialer: &recordingDialer{}}
	assert.ErrorIs(t, noSender.SendCategoryAudit(context.Background(), sampleAudit, []string{"ops@store.example"}, fixedNow), errs.ErrMissingSetting)

	assert.ErrorIs(t, failing.SendCategoryAudit(context.Background(), sampleAudit, nil, fixedNow), errs.ErrClient)
}

func TestSendCategoryAuditCancelled(t *testing.T) {
	dialer := &recordingDialer{}
	mailer := &ReportMailer{sender: "reports@store.example", dialer: dialer}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.SendCategoryAudit(ctx, sampleAudit, []string{"ops@store.example"}, fixedNow)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dialer.sent)
}

func TestCreateReportMailerDialsConfiguredServer(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	mailer := CreateReportMailer(config.SMTPConfig{Host: "127.0.0.1", Port: port, Sender: "reports@store.example"})

	err = mailer.SendCategoryAudit(context.Background(), sampleAudit, []string{"ops@store.example"}, fixedNow)
	assert.ErrorContains(t, err, "refused")
}

func TestRenderCategoryAudit(t *testing.T) {
	out := RenderCategoryAudit(sampleAudit)

	assert.Contains(t, out, "Products scanned: 3")
	assert.Contains(t, out, "Non-canonical products: 1")
	assert.Contains(t, out, `p1 "Floral Dress"`)
	assert.NotContains(t, out, "Unreadable")

	withSkipped := sampleAudit
	withSkipped.Undecodable = []string{"p7", "p8"}
	assert.Contains(t, RenderCategoryAudit(withSkipped), "Unreadable products: p7, p8")
}

// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"

	"github.com/Miky-dev/GestIA/internal/logging"
	"github.com/Miky-dev/GestIA/internal/tracing"
)

const defaultTimeout = 10 * time.Second

// APISender delivers mail through the Resend API.
type APISender struct {
	client *resend.Client
	from   string

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

var _ SenderInterface = (*APISender)(nil)

func (s *APISender) Send(ctx context.Context, msg Message) error {
	ctx, span := s.tracer.Start(ctx, "mail.APISender.Send")
	defer span.End()

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	})
	if err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	s.logger.Debugf("mail %s accepted by provider", sent.Id)

	return nil
}

// NewAPISender builds a sender for the API rooted at baseURL, e.g. https://api.resend.com/.
func NewAPISender(baseURL, apiKey, from string, tracer tracing.TracingInterface, logger logging.LoggerInterface) (*APISender, error) {
	httpClient := &http.Client{
		Timeout:   defaultTimeout,
		Transport: tracing.HTTPClientTransport(http.DefaultTransport),
	}

	client := resend.NewCustomClient(httpClient, apiKey)

	if baseURL != "" {
		u, err := url.Parse(strings.TrimSuffix(baseURL, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid mail api url: %w", err)
		}
		client.BaseURL = u
	}

	s := new(APISender)
	s.client = client
	s.from = from

	s.tracer = tracer
	s.logger = logger

	return s, nil
}

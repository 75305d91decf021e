// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/Miky-dev/GestIA/internal/logging"
)

// LogSender writes outgoing mail to the log instead of delivering it.
// It is used when no provider key is configured.
type LogSender struct {
	logger logging.LoggerInterface
}

var _ SenderInterface = (*LogSender)(nil)

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Infof("mail delivery disabled, to=%s subject=%q\n%s", msg.To, msg.Subject, msg.Text)
	return nil
}

func NewLogSender(logger logging.LoggerInterface) *LogSender {
	return &LogSender{logger: logger}
}

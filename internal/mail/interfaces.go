// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

type SenderInterface interface {
	Send(ctx context.Context, msg Message) error
}

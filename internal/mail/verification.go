// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	texttemplate "text/template"
	"time"
)

//go:embed templates/*
var templatesFS embed.FS

var (
	verificationHTML = template.Must(template.ParseFS(templatesFS, "templates/verification.html"))
	verificationText = texttemplate.Must(texttemplate.ParseFS(templatesFS, "templates/verification.txt"))
)

const verificationSubject = "Verifica la tua email - GestIA"

type verificationData struct {
	Link       string
	ValidHours int
}

// VerificationLink builds the public link that consumes rawToken.
func VerificationLink(appURL, rawToken string) string {
	return strings.TrimRight(appURL, "/") + "/api/v0/verify-email?token=" + url.QueryEscape(rawToken)
}

// NewVerificationMessage renders the verification mail for the address to.
func NewVerificationMessage(to, appURL, rawToken string, ttl time.Duration) (Message, error) {
	data := verificationData{
		Link:       VerificationLink(appURL, rawToken),
		ValidHours: int(ttl.Hours()),
	}

	var html, text bytes.Buffer
	if err := verificationHTML.Execute(&html, data); err != nil {
		return Message{}, fmt.Errorf("failed to render verification mail: %w", err)
	}
	if err := verificationText.Execute(&text, data); err != nil {
		return Message{}, fmt.Errorf("failed to render verification mail: %w", err)
	}

	return Message{
		To:      to,
		Subject: verificationSubject,
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

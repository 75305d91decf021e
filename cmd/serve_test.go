// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestServeUntilDoneStopsOnCancel(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- serveUntilDone(ctx, srv, time.Second) }()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
}

func TestServeUntilDoneReportsListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to reserve a port: %v", err)
	}
	defer busy.Close()

	srv := &http.Server{Addr: busy.Addr().String(), Handler: http.NotFoundHandler()}

	err = serveUntilDone(context.Background(), srv, time.Second)
	if err == nil || !strings.Contains(err.Error(), "server error") {
		t.Fatalf("expected a server error, got %v", err)
	}
}

// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"time"
)

// Result describes the state of a key after a consumed point.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

type LimiterInterface interface {
	Consume(ctx context.Context, key string) (*Result, error)
	Reset(ctx context.Context, key string) error
}

// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

// PingerInterface is a dependency whose reachability is reported by the deep check.
type PingerInterface interface {
	Ping(context.Context) error
}

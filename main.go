// Copyright 2026 The GestIA Authors
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/Miky-dev/GestIA/cmd"

func main() {
	cmd.Execute()
}

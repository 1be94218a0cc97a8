// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// Package all registers every backend with the conformance tests.
package all

import (
	// import to register testing helpers
	_ "github.com/ssbc/seqview/kv/test"
	_ "github.com/ssbc/seqview/mem/test"
	_ "github.com/ssbc/seqview/sqlite/test"
)

// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

package seqview

// Cmp is the result of comparing a view or proxy with another value.
type Cmp int

const (
	// NotApplicable means the other operand is of a kind that can't be compared.
	// Callers may try the comparison the other way around or fall back to a default.
	NotApplicable Cmp = iota
	Equal
	NotEqual
)

func cmpOf(eq bool) Cmp {
	if eq {
		return Equal
	}
	return NotEqual
}

// Bool returns the comparison as a boolean. ok is false for NotApplicable.
func (c Cmp) Bool() (eq, ok bool) {
	switch c {
	case Equal:
		return true, true
	case NotEqual:
		return false, true
	default:
		return false, false
	}
}

// Not inverts Equal and NotEqual and leaves NotApplicable alone.
func (c Cmp) Not() Cmp {
	switch c {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	default:
		return NotApplicable
	}
}

func (c Cmp) String() string {
	switch c {
	case Equal:
		return "Equal"
	case NotEqual:
		return "NotEqual"
	default:
		return "NotApplicable"
	}
}

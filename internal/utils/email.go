// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "strings"

// NormalizeEmail trims surrounding whitespace and case-folds the address to
// lowercase. The result is the storage and comparison key for accounts.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

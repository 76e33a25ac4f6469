// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrFieldRequired = errors.New("is required")
	ErrInvalidEmail  = errors.New("must be a valid email address")
	ErrInvalidField  = errors.New("is invalid")
)

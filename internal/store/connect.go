// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	connectBaseDelay = 200 * time.Millisecond
	connectMaxDelay  = 5 * time.Second
)

// pingWithRetry calls ping up to attempts times with capped exponential
// backoff. Errors for which retryable returns false stop immediately.
func pingWithRetry(ctx context.Context, attempts uint64, ping func(context.Context) error, retryable func(error) bool) error {
	if attempts == 0 {
		attempts = 1
	}

	backoff := retry.NewExponential(connectBaseDelay)
	backoff = retry.WithCappedDuration(connectMaxDelay, backoff)
	backoff = retry.WithMaxRetries(attempts-1, backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := ping(ctx); err != nil {
			if retryable(err) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
}

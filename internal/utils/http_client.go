// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://127.0.0.1:8080/api", 5*time.Second)
//	resp, err := client.R().SetBody(req).Post("/auth/login")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a JSON client rooted at baseURL. Each call returns an
// independent client with its own connection pool.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// WithBearer returns a request that carries the given bearer token.
func (c *HTTPClient) WithBearer(token string) *resty.Request {
	return c.R().SetAuthToken(token)
}

/*
Copyright 2024-2025 the Unikorn Authors.
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package auth provides a client for the Catroweb authentication API.
//
// Every operation is attempted exactly once and blocks until a response is
// received.  HTTP outcomes, including 401 and 422, are returned as values in
// a Response, errors are reserved for failures to complete the exchange.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/catrobat/catroweb-auth/pkg/constants"
	"github.com/catrobat/catroweb-auth/pkg/openapi"

	"k8s.io/utils/ptr"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Client issues authentication requests to a Catroweb server.
type Client struct {
	baseURL   string
	client    *http.Client
	options   Options
	endpoints *Endpoints
}

// Ensure the interface is implemented.
var _ Interface = &Client{}

// New returns a new client, options may be nil.
func New(options *Options) *Client {
	if options == nil {
		options = &Options{}
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	client := options.HTTPClient
	if client == nil {
		timeout := options.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}

		client = &http.Client{
			Timeout: timeout,
		}
	}

	return &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    client,
		options:   *options,
		endpoints: NewEndpoints(),
	}
}

//nolint:cyclop
func (c *Client) doRequest(ctx context.Context, method, path string, bearer *string, body any) (*http.Response, []byte, error) {
	log := log.FromContext(ctx)

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshaling request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	trace := newTraceContext()
	req.Header.Set("Traceparent", trace.parent())
	req.Header.Set("Tracestate", traceState)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.VersionString())

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if bearer != nil {
		req.Header.Set("Authorization", "Bearer "+*bearer)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "method", method, "path", path, "duration", duration, "traceID", trace.traceID)
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "method", method, "path", path, "status", resp.StatusCode, "traceID", trace.traceID)
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.options.LogRequests {
		log.Info("request complete", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", trace.traceID)
	}

	if c.options.LogResponses && len(respBody) > 0 {
		log.Info("response body", "method", method, "path", path, "body", string(respBody))
	}

	return resp, respBody, nil
}

// execute performs a request and converts the result into a typed response.
func execute[T any](ctx context.Context, c *Client, method, path string, bearer *string, body any) (*Response[T], error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, respBody, err := c.doRequest(ctx, method, path, bearer, body)
	if err != nil {
		return nil, err
	}

	result := &Response[T]{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
	}

	if !result.IsSuccess() {
		if len(respBody) > 0 {
			result.ErrorBody = ptr.To(string(respBody))
		}

		return result, nil
	}

	var value T

	// Operations without a payload ignore whatever the server sends back.
	if _, ok := any(&value).(*openapi.Empty); ok || len(respBody) == 0 {
		return result, nil
	}

	if err := json.Unmarshal(respBody, &value); err != nil {
		return nil, fmt.Errorf("unmarshaling response body: %w", err)
	}

	result.Body = &value

	return result, nil
}

func (c *Client) Login(ctx context.Context, bearer *string, credentials *openapi.Credentials) (*Response[openapi.TokenResponse], error) {
	if credentials == nil {
		return nil, ErrMissingCredentials
	}

	response, err := execute[openapi.TokenResponse](ctx, c, http.MethodPost, c.endpoints.Authentication(), bearer, credentials)
	if err != nil {
		return nil, fmt.Errorf("logging in: %w", err)
	}

	return response, nil
}

func (c *Client) CheckToken(ctx context.Context, bearer string) (*Response[openapi.Empty], error) {
	response, err := execute[openapi.Empty](ctx, c, http.MethodGet, c.endpoints.Authentication(), &bearer, nil)
	if err != nil {
		return nil, fmt.Errorf("checking token: %w", err)
	}

	return response, nil
}

func (c *Client) Register(ctx context.Context, bearer *string, request *openapi.RegistrationRequest) (*Response[openapi.TokenResponse], error) {
	if request == nil {
		return nil, ErrMissingRequest
	}

	response, err := execute[openapi.TokenResponse](ctx, c, http.MethodPost, c.endpoints.User(), bearer, request)
	if err != nil {
		return nil, fmt.Errorf("registering user: %w", err)
	}

	return response, nil
}

func (c *Client) UpgradeToken(ctx context.Context, deprecated openapi.DeprecatedToken) (*Response[openapi.TokenResponse], error) {
	request := &openapi.UpgradeTokenRequest{
		UploadToken: deprecated.Value,
	}

	response, err := execute[openapi.TokenResponse](ctx, c, http.MethodPost, c.endpoints.UpgradeToken(), nil, request)
	if err != nil {
		return nil, fmt.Errorf("upgrading token: %w", err)
	}

	return response, nil
}

func (c *Client) DeleteUser(ctx context.Context, bearer string) (*Response[openapi.Empty], error) {
	response, err := execute[openapi.Empty](ctx, c, http.MethodDelete, c.endpoints.User(), &bearer, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting user: %w", err)
	}

	return response, nil
}

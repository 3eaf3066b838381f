/*
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

package auth

import (
	"net/http"
	"time"

	"github.com/spf13/pflag"
)

const (
	DefaultBaseURL = "https://share.catrob.at"
	DefaultTimeout = 30 * time.Second
)

// Options allows the client to be configured.
type Options struct {
	// BaseURL is the Catroweb server root, without the /api prefix.
	BaseURL string

	// Timeout is applied to every request when HTTPClient is not set.
	Timeout time.Duration

	// LogRequests logs the method, path, status and duration of every call.
	LogRequests bool

	// LogResponses logs raw response bodies.
	LogResponses bool

	// HTTPClient overrides the default transport.
	HTTPClient *http.Client
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.BaseURL, "server", DefaultBaseURL, "Catroweb server to authenticate against.")
	f.DurationVar(&o.Timeout, "request-timeout", DefaultTimeout, "Timeout applied to each request.")
	f.BoolVar(&o.LogRequests, "log-requests", false, "Log every request.")
	f.BoolVar(&o.LogResponses, "log-responses", false, "Log every response body.")
}

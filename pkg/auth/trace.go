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

package auth

import (
	"crypto/rand"
	"encoding/hex"
)

const (
	traceVersion = "00"
	traceSampled = "01"

	// traceState identifies this client to anything propagating the trace.
	traceState = "catroweb-auth=client"
)

// traceContext is the W3C trace context of a single request.
type traceContext struct {
	traceID string
	spanID  string
}

func randomHex(n int) string {
	buf := make([]byte, n)
	_, _ = rand.Read(buf)

	return hex.EncodeToString(buf)
}

func newTraceContext() traceContext {
	return traceContext{
		traceID: randomHex(16),
		spanID:  randomHex(8),
	}
}

// parent is the traceparent header value.
func (t traceContext) parent() string {
	return traceVersion + "-" + t.traceID + "-" + t.spanID + "-" + traceSampled
}

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
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/catrobat/catroweb-auth/pkg/openapi"
)

// Well known status codes returned by Catroweb.
const (
	StatusInvalidCredentials  = http.StatusUnauthorized
	StatusTokenOK             = http.StatusOK
	StatusRegisterOK          = http.StatusCreated
	StatusRegisterValidated   = http.StatusNoContent
	StatusUnprocessableEntity = http.StatusUnprocessableEntity
	StatusInvalidUploadToken  = http.StatusUnauthorized
	StatusUserDeleted         = http.StatusNoContent
)

var (
	ErrMissingCredentials = errors.New("credentials must be provided")
	ErrMissingRequest     = errors.New("registration request must be provided")
	ErrEmptyErrorBody     = errors.New("response has no error body")
)

// Response is the outcome of a single call.  Body is only set for a successful
// response that carries a payload, ErrorBody only for an unsuccessful one.
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       *T
	ErrorBody  *string
}

// IsSuccess returns true for any 2XX status.
func (r *Response[T]) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ParseRegisterFailure decodes the error body of a rejected registration.
func ParseRegisterFailure(errorBody *string) (*openapi.RegisterFailureDetail, error) {
	if errorBody == nil || *errorBody == "" {
		return nil, ErrEmptyErrorBody
	}

	detail := &openapi.RegisterFailureDetail{}

	if err := json.Unmarshal([]byte(*errorBody), detail); err != nil {
		return nil, fmt.Errorf("unmarshaling register failure: %w", err)
	}

	return detail, nil
}

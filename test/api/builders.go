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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/catrobat/catroweb-auth/pkg/openapi"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// GenerateTestID returns a name unique to this test run, timestamped so
// leaked users on a shared server can be traced back to a run.
func GenerateTestID() string {
	return generateRandomName("test" + time.Now().Format("20060102150405"))
}

// RegistrationBuilder builds registration requests for testing.
type RegistrationBuilder struct {
	request openapi.RegistrationRequest
}

// NewRegistration creates a registration for a user that has never existed.
func NewRegistration() *RegistrationBuilder {
	id := GenerateTestID()

	return &RegistrationBuilder{
		request: openapi.RegistrationRequest{
			AcceptedTerms: true,
			Email:         id + "@catroweb.invalid",
			Username:      id,
			Password:      "Pocket-" + id,
		},
	}
}

// WithEmail reuses an existing email address.
func (b *RegistrationBuilder) WithEmail(email string) *RegistrationBuilder {
	b.request.Email = email
	return b
}

// WithUsername reuses an existing username.
func (b *RegistrationBuilder) WithUsername(username string) *RegistrationBuilder {
	b.request.Username = username
	return b
}

func (b *RegistrationBuilder) WithPassword(password string) *RegistrationBuilder {
	b.request.Password = password
	return b
}

// WithDryRun only validates the registration.
func (b *RegistrationBuilder) WithDryRun() *RegistrationBuilder {
	b.request.DryRun = true
	return b
}

// Build returns the completed registration request.
func (b *RegistrationBuilder) Build() *openapi.RegistrationRequest {
	request := b.request

	return &request
}

// CredentialsFor returns login credentials matching a registration.
func CredentialsFor(request *openapi.RegistrationRequest) *openapi.Credentials {
	return &openapi.Credentials{
		Username: request.Username,
		Password: request.Password,
	}
}

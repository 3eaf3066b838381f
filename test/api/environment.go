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

package api

import (
	"context"
	"net/http/httptest"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/pkg/server"

	"golang.org/x/crypto/bcrypt"
)

// FakeUploadToken is a deprecated token that the fake server will upgrade
// once for the configured test user.
const FakeUploadToken = "0f1e2d3c4b5a69788796a5b4c3d2e1f0"

// Environment is the server under test and a client for it.
type Environment struct {
	Config *TestConfig
	Client *auth.Client

	fake *httptest.Server
}

// NewEnvironment connects to the live server when configured to, otherwise
// it starts a fake seeded with the test user.
func NewEnvironment(ctx context.Context, config *TestConfig) (*Environment, error) {
	e := &Environment{
		Config: config,
	}

	baseURL := config.BaseURL

	if !config.Live {
		options := &server.Options{
			SigningKey:       GenerateTestID(),
			PasswordCost:     bcrypt.MinCost,
			SeedUsers:        []string{config.Username + ":" + config.Password},
			DeprecatedTokens: []string{FakeUploadToken + ":" + config.Username},
		}

		handler, err := server.New(ctx, options)
		if err != nil {
			return nil, err
		}

		e.fake = httptest.NewServer(handler)

		baseURL = e.fake.URL
	}

	e.Client = auth.New(&auth.Options{
		BaseURL:      baseURL,
		Timeout:      config.RequestTimeout,
		LogRequests:  config.LogRequests,
		LogResponses: config.LogResponses,
	})

	return e, nil
}

// Hermetic is true when running against the fake server.
func (e *Environment) Hermetic() bool {
	return e.fake != nil
}

func (e *Environment) Close() {
	if e.fake != nil {
		e.fake.Close()
	}
}

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
	"context"

	"github.com/catrobat/catroweb-auth/pkg/openapi"
)

//go:generate mockgen -source=interface.go -destination=mock/interface.go -package=mock

// Interface is the set of authentication operations exposed by Catroweb.
type Interface interface {
	// Login exchanges credentials for a new token.  bearer may be nil
	// for a first time login.
	Login(ctx context.Context, bearer *string, credentials *openapi.Credentials) (*Response[openapi.TokenResponse], error)

	// CheckToken checks whether the token is currently valid.
	CheckToken(ctx context.Context, bearer string) (*Response[openapi.Empty], error)

	// Register creates a new user and returns a token for it.
	Register(ctx context.Context, bearer *string, request *openapi.RegistrationRequest) (*Response[openapi.TokenResponse], error)

	// UpgradeToken exchanges a deprecated upload token for a current token.
	UpgradeToken(ctx context.Context, deprecated openapi.DeprecatedToken) (*Response[openapi.TokenResponse], error)

	// DeleteUser deletes the user that owns the token.
	DeleteUser(ctx context.Context, bearer string) (*Response[openapi.Empty], error)
}

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

package openapi

// Credentials identify a user at login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationRequest describes a new user account.
type RegistrationRequest struct {
	// AcceptedTerms records the user agreed to the terms of use.
	AcceptedTerms bool `json:"accepted_terms"`
	// DryRun asks the server to validate the request without creating the user.
	DryRun   bool   `json:"dry-run,omitempty"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// DeprecatedToken is a legacy upload token that may be exchanged for a
// current authentication token.
type DeprecatedToken struct {
	Value string
}

// UpgradeTokenRequest is the wire form of a DeprecatedToken.
type UpgradeTokenRequest struct {
	UploadToken string `json:"upload_token"`
}

// TokenResponse is returned by any call that issues a token.
type TokenResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RegisterFailureDetail is the error body of a rejected registration, each
// field is only present when that field was the cause.
type RegisterFailureDetail struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Empty is the body type of operations that carry no response payload.
type Empty struct{}

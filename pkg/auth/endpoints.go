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

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Authentication is used to log in (POST) and check a token (GET).
func (e *Endpoints) Authentication() string {
	return "/api/authentication"
}

func (e *Endpoints) UpgradeToken() string {
	return "/api/authentication/upgrade"
}

// User is used to register (POST) and delete (DELETE) a user.
func (e *Endpoints) User() string {
	return "/api/user"
}

func (e *Endpoints) Health() string {
	return "/api/health"
}

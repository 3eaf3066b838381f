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

package server

import (
	"time"

	"github.com/spf13/pflag"

	"golang.org/x/crypto/bcrypt"
)

// Options allows behaviour to be defined on the CLI.
type Options struct {
	// ListenAddress is where the HTTP server listens.
	ListenAddress string

	// SigningKey signs issued tokens.
	SigningKey string

	// TokenTTL is how long an issued token is valid for.
	TokenTTL time.Duration

	// PasswordCost is the bcrypt cost used when hashing passwords.
	PasswordCost int

	// SeedUsers are created on start up, each of the form user:password.
	SeedUsers []string

	// DeprecatedTokens are legacy upload tokens that may be upgraded, each
	// of the form token:user.
	DeprecatedTokens []string
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "Address to listen on.")
	f.StringVar(&o.SigningKey, "signing-key", "", "Key used to sign tokens, generated if not set.")
	f.DurationVar(&o.TokenTTL, "token-ttl", 24*time.Hour, "How long issued tokens are valid for.")
	f.IntVar(&o.PasswordCost, "password-cost", bcrypt.DefaultCost, "Bcrypt cost used to hash passwords.")
	f.StringSliceVar(&o.SeedUsers, "seed-user", nil, "User to create on start up of the form user:password, may be repeated.")
	f.StringSliceVar(&o.DeprecatedTokens, "deprecated-token", nil, "Upgradable legacy token of the form token:user, may be repeated.")
}

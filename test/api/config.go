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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrMissingConfiguration = errors.New("missing required configuration")

type TestConfig struct {
	// Live runs suites against a real server rather than the fake.
	Live bool `env:"CATROWEB_LIVE" envDefault:"false"`

	// BaseURL is the server root, required when Live is set.
	BaseURL string `env:"CATROWEB_BASE_URL"`

	// Username and Password identify an account that exists before the
	// suites start.
	Username string `env:"TEST_USERNAME" envDefault:"catroweb"`
	Password string `env:"TEST_PASSWORD" envDefault:"catroweb"`

	// ExpiredUploadToken is a deprecated token the server does not know.
	ExpiredUploadToken string `env:"TEST_EXPIRED_UPLOAD_TOKEN" envDefault:"d41d8cd98f00b204e9800998ecf8427e"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	LogRequests    bool          `env:"LOG_REQUESTS"    envDefault:"false"`
	LogResponses   bool          `env:"LOG_RESPONSES"   envDefault:"false"`
}

// LoadTestConfig loads configuration from environment variables and .env files.
// Returns an error if required configuration values are missing.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parsing test configuration: %w", err)
	}

	if err := validateRequiredFields(config); err != nil {
		return nil, err
	}

	return config, nil
}

func loadEnvFile() {
	envPaths := []string{
		"../../.env",    // From test/api/suites directory
		"../../../.env", // From test/contracts/consumer/catroweb directory
	}

	var envPath string

	for _, path := range envPaths {
		if _, err := os.Stat(path); err == nil {
			absPath, err := filepath.Abs(path)
			if err == nil {
				envPath = absPath
				break
			}
		}
	}

	if envPath == "" {
		// .env file not found - this is OK in CI/CD where env vars are set directly
		return
	}

	// Existing environment variables take precedence.
	if err := godotenv.Load(envPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", envPath, err)
	}
}

// validateRequiredFields checks that all required configuration values are set.
func validateRequiredFields(config *TestConfig) error {
	if !config.Live {
		return nil
	}

	var missing []string

	if config.BaseURL == "" {
		missing = append(missing, "CATROWEB_BASE_URL")
	}

	if config.Username == "" {
		missing = append(missing, "TEST_USERNAME")
	}

	if config.Password == "" {
		missing = append(missing, "TEST_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %v, set these environment variables or add them to a .env file", ErrMissingConfiguration, missing)
	}

	return nil
}

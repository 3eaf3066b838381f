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

// Package api provides integration test utilities for the Catroweb
// authentication API.
//
// # Environments
//
// Suites run against an in-process fake of the authentication service by
// default, so they are hermetic and may run offline.  Setting CATROWEB_LIVE
// opts in to running against the real server at CATROWEB_BASE_URL, which
// requires outgoing network access and an existing account for the
// configured TEST_USERNAME.
//
// # Test Data
//
// Every user created by a test has a timestamped, randomised name so
// concurrent runs against a shared server do not collide, and is deleted
// again when the test completes, whether it passed or not.
package api

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

package suites

import (
	"context"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/test/api"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var (
	environment *api.Environment
	client      *auth.Client
	ctx         context.Context
	config      *api.TestConfig
)

var _ = BeforeSuite(func() {
	var err error

	config, err = api.LoadTestConfig()
	Expect(err).NotTo(HaveOccurred())

	environment, err = api.NewEnvironment(log.IntoContext(context.Background(), GinkgoLogr), config)
	Expect(err).NotTo(HaveOccurred())

	DeferCleanup(environment.Close)

	if config.Live {
		GinkgoWriter.Printf("Running against live server %s\n", config.BaseURL)
	}
})

var _ = BeforeEach(func() {
	client = environment.Client
	ctx = log.IntoContext(context.Background(), GinkgoLogr)
})

func TestSuites(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "API Test Suites")
}

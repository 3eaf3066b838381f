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

package suites

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/pkg/openapi"
	"github.com/catrobat/catroweb-auth/test/api"
)

var _ = Describe("Token Upgrade", func() {
	Context("When upgrading a deprecated token", func() {
		Describe("Given an unknown or expired token", func() {
			It("should reject the token", func() {
				// Given: A deprecated token the server does not know
				deprecated := openapi.DeprecatedToken{
					Value: config.ExpiredUploadToken,
				}

				// When: I upgrade it
				response, err := client.UpgradeToken(ctx, deprecated)

				// Then: The upgrade should be rejected as an invalid upload token
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusInvalidUploadToken))
				Expect(response.Body).To(BeNil())
			})
		})

		Describe("Given a valid token", func() {
			It("should issue a current token exactly once", func() {
				if !environment.Hermetic() {
					Skip("no known valid deprecated token exists on the live server")
				}

				// Given: A deprecated token the server issued
				deprecated := openapi.DeprecatedToken{
					Value: api.FakeUploadToken,
				}

				// When: I upgrade it
				response, err := client.UpgradeToken(ctx, deprecated)

				// Then: A current token should be issued
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusTokenOK))
				Expect(response.Body).NotTo(BeNil())

				check, err := client.CheckToken(ctx, response.Body.Token)
				Expect(err).NotTo(HaveOccurred())
				Expect(check.StatusCode).To(Equal(auth.StatusTokenOK))

				// And: The deprecated token cannot be used again
				again, err := client.UpgradeToken(ctx, deprecated)
				Expect(err).NotTo(HaveOccurred())
				Expect(again.StatusCode).To(Equal(auth.StatusInvalidUploadToken))
			})
		})
	})
})

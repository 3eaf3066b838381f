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

	"k8s.io/utils/ptr"
)

var _ = Describe("Authentication", func() {
	Context("When logging in", func() {
		Describe("Given invalid credentials", func() {
			It("should reject an unknown username", func() {
				// Given: A username that has never been registered
				credentials := &openapi.Credentials{
					Username: api.GenerateTestID(),
					Password: config.Password,
				}

				// When: I log in without a token
				response, err := client.Login(ctx, nil, credentials)

				// Then: The login should be rejected with 401 Unauthorized
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusInvalidCredentials))
				Expect(response.Body).To(BeNil())
			})

			It("should reject a wrong password", func() {
				// Given: An existing user and the wrong password
				credentials := &openapi.Credentials{
					Username: config.Username,
					Password: config.Password + "-wrong",
				}

				// When: I log in without a token
				response, err := client.Login(ctx, nil, credentials)

				// Then: The login should be rejected with 401 Unauthorized
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusInvalidCredentials))
			})
		})

		Describe("Given valid credentials", func() {
			It("should issue a token that passes a token check", func() {
				// Given: The credentials of an existing user
				credentials := &openapi.Credentials{
					Username: config.Username,
					Password: config.Password,
				}

				// When: I log in without a token
				response, err := client.Login(ctx, nil, credentials)

				// Then: A new token should be issued
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusTokenOK))
				Expect(response.Body).NotTo(BeNil())
				Expect(response.Body.Token).NotTo(BeEmpty())

				// And: The token should be valid straight away
				check, err := client.CheckToken(ctx, response.Body.Token)
				Expect(err).NotTo(HaveOccurred())
				Expect(check.StatusCode).To(Equal(auth.StatusTokenOK))
			})

			It("should accept a previous token as bearer", func() {
				// Given: A token from an earlier login
				credentials := &openapi.Credentials{
					Username: config.Username,
					Password: config.Password,
				}

				first, err := client.Login(ctx, nil, credentials)
				Expect(err).NotTo(HaveOccurred())
				Expect(first.StatusCode).To(Equal(auth.StatusTokenOK))

				// When: I log in again presenting it
				second, err := client.Login(ctx, ptr.To(first.Body.Token), credentials)

				// Then: A token should be issued
				Expect(err).NotTo(HaveOccurred())
				Expect(second.StatusCode).To(Equal(auth.StatusTokenOK))
				Expect(second.Body.Token).NotTo(BeEmpty())
			})
		})
	})

	Context("When checking a token", func() {
		Describe("Given a token the server never issued", func() {
			It("should reject the token", func() {
				// Given: A made up token
				// When: I check it
				response, err := client.CheckToken(ctx, api.GenerateTestID())

				// Then: The check should not succeed
				Expect(err).NotTo(HaveOccurred())
				Expect(response.IsSuccess()).To(BeFalse())
			})
		})

		Describe("Given the owner of the token was deleted", func() {
			It("should reject the token", func() {
				// Given: A user that has been deleted
				request := api.NewRegistration().Build()
				token := api.RegisterUserWithCleanup(ctx, client, request)

				deleted, err := client.DeleteUser(ctx, token)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.StatusCode).To(Equal(auth.StatusUserDeleted))

				// When: I check their token
				response, err := client.CheckToken(ctx, token)

				// Then: The check should not succeed
				Expect(err).NotTo(HaveOccurred())
				Expect(response.IsSuccess()).To(BeFalse())
			})
		})
	})
})

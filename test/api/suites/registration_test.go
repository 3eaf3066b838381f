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
	"github.com/catrobat/catroweb-auth/test/api"
)

var _ = Describe("Registration", func() {
	Context("When registering a new user", func() {
		Describe("Given an unused email and username", func() {
			It("should create the user and allow it to be deleted", func() {
				// Given: An email and username that have never been used
				request := api.NewRegistration().Build()

				// When: I register
				response, err := client.Register(ctx, nil, request)

				// Then: The user should be created and a token issued
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusRegisterOK))
				Expect(response.Body).NotTo(BeNil())
				Expect(response.Body.Token).NotTo(BeEmpty())

				// And: The user can be deleted with that token
				deleted, err := client.DeleteUser(ctx, response.Body.Token)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.StatusCode).To(Equal(auth.StatusUserDeleted))
			})

			It("should allow the new user to log in and be deleted", func() {
				// Given: A newly registered user
				request := api.NewRegistration().Build()
				api.RegisterUserWithCleanup(ctx, client, request)

				// When: I log in with the same credentials
				response, err := client.Login(ctx, nil, api.CredentialsFor(request))

				// Then: A token should be issued
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusTokenOK))
				Expect(response.Body).NotTo(BeNil())
				Expect(response.Body.Token).NotTo(BeEmpty())

				// And: The user can be deleted with the login token
				deleted, err := client.DeleteUser(ctx, response.Body.Token)
				Expect(err).NotTo(HaveOccurred())
				Expect(deleted.StatusCode).To(Equal(auth.StatusUserDeleted))

				// And: The user can no longer log in
				login, err := client.Login(ctx, nil, api.CredentialsFor(request))
				Expect(err).NotTo(HaveOccurred())
				Expect(login.StatusCode).To(Equal(auth.StatusInvalidCredentials))
			})
		})

		Describe("Given an email that is already registered", func() {
			It("should reject the registration identifying the email", func() {
				// Given: An existing user
				existing := api.NewRegistration().Build()
				api.RegisterUserWithCleanup(ctx, client, existing)

				// When: I register a new username with the same email
				request := api.NewRegistration().WithEmail(existing.Email).Build()

				response, err := client.Register(ctx, nil, request)
				Expect(err).NotTo(HaveOccurred())

				// Then: The registration should be rejected as unprocessable
				detail := api.ExpectRegisterFailure(response)

				// And: The email should be identified as the cause
				Expect(detail.Email).NotTo(BeNil())
				Expect(*detail.Email).NotTo(BeEmpty())
			})
		})

		Describe("Given a username that is already registered", func() {
			It("should reject the registration identifying the username", func() {
				// Given: An existing user
				existing := api.NewRegistration().Build()
				api.RegisterUserWithCleanup(ctx, client, existing)

				// When: I register a new email with the same username
				request := api.NewRegistration().WithUsername(existing.Username).Build()

				response, err := client.Register(ctx, nil, request)
				Expect(err).NotTo(HaveOccurred())

				// Then: The registration should be rejected as unprocessable
				detail := api.ExpectRegisterFailure(response)

				// And: The username should be identified as the cause
				Expect(detail.Username).NotTo(BeNil())
				Expect(*detail.Username).NotTo(BeEmpty())
			})
		})

		Describe("Given invalid fields", func() {
			It("should reject a malformed email", func() {
				// Given: An email address without a domain
				request := api.NewRegistration().WithEmail("catroweb").Build()

				// When: I register
				response, err := client.Register(ctx, nil, request)
				Expect(err).NotTo(HaveOccurred())

				// Then: The email should be identified as the cause
				detail := api.ExpectRegisterFailure(response)
				Expect(detail.Email).NotTo(BeNil())
			})

			It("should reject a short password", func() {
				// Given: A password that is too short
				request := api.NewRegistration().WithPassword("12").Build()

				// When: I register
				response, err := client.Register(ctx, nil, request)
				Expect(err).NotTo(HaveOccurred())

				// Then: The password should be identified as the cause
				detail := api.ExpectRegisterFailure(response)
				Expect(detail.Password).NotTo(BeNil())
			})
		})
	})

	Context("When validating a registration", func() {
		Describe("Given a dry run", func() {
			It("should not create the user", func() {
				if !environment.Hermetic() {
					Skip("dry run support is only guaranteed by the fake server")
				}

				// Given: A valid registration marked as a dry run
				request := api.NewRegistration().WithDryRun().Build()

				// When: I register
				response, err := client.Register(ctx, nil, request)

				// Then: The registration should validate without issuing a token
				Expect(err).NotTo(HaveOccurred())
				Expect(response.StatusCode).To(Equal(auth.StatusRegisterValidated))
				Expect(response.Body).To(BeNil())

				// And: The user should not exist
				login, err := client.Login(ctx, nil, api.CredentialsFor(request))
				Expect(err).NotTo(HaveOccurred())
				Expect(login.StatusCode).To(Equal(auth.StatusInvalidCredentials))
			})
		})
	})
})

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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/pkg/openapi"
)

// RegisterUserWithCleanup registers a user and schedules its deletion.
// Returns the token issued by registration.
func RegisterUserWithCleanup(ctx context.Context, client auth.Interface, request *openapi.RegistrationRequest) string {
	response, err := client.Register(ctx, nil, request)
	Expect(err).NotTo(HaveOccurred())
	Expect(response.StatusCode).To(Equal(auth.StatusRegisterOK), "registration failed: %s", errorBody(response.ErrorBody))
	Expect(response.Body).NotTo(BeNil())
	Expect(response.Body.Token).NotTo(BeEmpty())

	GinkgoWriter.Printf("Registered user: %s\n", request.Username)

	token := response.Body.Token

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func(ctx context.Context) {
		DeleteUser(ctx, client, request.Username, token)
	})

	return token
}

// DeleteUser deletes a user, failures are logged rather than failing the test
// as the test itself may have already deleted the user.
func DeleteUser(ctx context.Context, client auth.Interface, username, token string) {
	GinkgoWriter.Printf("Cleaning up user: %s\n", username)

	response, err := client.DeleteUser(ctx, token)
	if err != nil {
		GinkgoWriter.Printf("Warning: Failed to delete user %s: %v\n", username, err)
		return
	}

	if response.StatusCode != auth.StatusUserDeleted {
		GinkgoWriter.Printf("Warning: Failed to delete user %s: status %d\n", username, response.StatusCode)
		return
	}

	GinkgoWriter.Printf("Successfully deleted user: %s\n", username)
}

// ExpectRegisterFailure verifies a registration was rejected and returns the
// parsed failure detail.
func ExpectRegisterFailure(response *auth.Response[openapi.TokenResponse]) *openapi.RegisterFailureDetail {
	Expect(response.StatusCode).To(Equal(auth.StatusUnprocessableEntity))
	Expect(response.Body).To(BeNil())

	detail, err := auth.ParseRegisterFailure(response.ErrorBody)
	Expect(err).NotTo(HaveOccurred())

	return detail
}

func errorBody(body *string) string {
	if body == nil {
		return "<none>"
	}

	return *body
}

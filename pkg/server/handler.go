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

//nolint:revive
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/catrobat/catroweb-auth/pkg/openapi"
	coreerrors "github.com/unikorn-cloud/core/pkg/server/errors"
	"github.com/unikorn-cloud/core/pkg/server/util"

	"k8s.io/utils/ptr"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

// Messages returned in registration error bodies.
const (
	messageEmailMissing     = "Email missing"
	messageEmailInvalid     = "Email invalid"
	messageEmailInUse       = "Email already in use"
	messageUsernameMissing  = "Username missing"
	messageUsernameTooShort = "Username too short"
	messageUsernameTooLong  = "Username too long"
	messageUsernameIsEmail  = "Username shouldn't contain an email address"
	messageUsernameInUse    = "Username already in use"
	messagePasswordMissing  = "Password missing"
	messagePasswordTooShort = "Password too short"
	messagePasswordTooLong  = "Password too long"
)

// errorResponse is the body of a 401.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	// users holds every registered account.
	users *userStore

	// tokens issues and verifies bearer tokens.
	tokens *tokenIssuer

	// deprecated maps legacy upload tokens to their owning username.
	deprecated     map[string]string
	deprecatedLock sync.Mutex
}

func newHandler(users *userStore, tokens *tokenIssuer, deprecated map[string]string) *Handler {
	return &Handler{
		users:      users,
		tokens:     tokens,
		deprecated: deprecated,
	}
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	util.WriteJSONResponse(w, r, http.StatusUnauthorized, &errorResponse{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}

	return token, true
}

// authenticate resolves the bearer token to a live user.
func (h *Handler) authenticate(ctx context.Context, r *http.Request) (*user, func(), bool) {
	log := log.FromContext(ctx)

	token, ok := bearerToken(r)
	if !ok {
		return nil, nil, false
	}

	claims, err := h.tokens.verify(token)
	if err != nil {
		log.V(1).Info("token rejected", "error", err.Error())
		return nil, nil, false
	}

	u, ok := h.users.lookup(claims.Subject)
	if !ok {
		return nil, nil, false
	}

	revoke := func() {
		h.tokens.revoke(claims)
	}

	return u, revoke, true
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request, status int, u *user) {
	token, refresh, err := h.tokens.issue(u.id)
	if err != nil {
		coreerrors.HandleError(w, r, fmt.Errorf("issuing token: %w", err))
		return
	}

	h.setUncacheable(w)
	util.WriteJSONResponse(w, r, status, &openapi.TokenResponse{
		Token:        token,
		RefreshToken: refresh,
	})
}

func (h *Handler) GetApiHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) GetApiAuthentication(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := h.authenticate(r.Context(), r); !ok {
		unauthorized(w, r, "Invalid JWT Token")
		return
	}

	h.setUncacheable(w)
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) PostApiAuthentication(w http.ResponseWriter, r *http.Request) {
	request := &openapi.Credentials{}

	if err := util.ReadJSONBody(r, request); err != nil {
		coreerrors.HandleError(w, r, err)
		return
	}

	u, ok := h.users.authenticate(request.Username, request.Password)
	if !ok {
		unauthorized(w, r, "Invalid credentials.")
		return
	}

	h.issue(w, r, http.StatusOK, u)
}

// consumeDeprecated resolves a legacy upload token to its user, the token
// is usable once.
func (h *Handler) consumeDeprecated(token string) (*user, bool) {
	h.deprecatedLock.Lock()
	defer h.deprecatedLock.Unlock()

	username, ok := h.deprecated[token]
	if !ok {
		return nil, false
	}

	u, ok := h.users.get(username)
	if !ok {
		return nil, false
	}

	delete(h.deprecated, token)

	return u, true
}

func (h *Handler) PostApiAuthenticationUpgrade(w http.ResponseWriter, r *http.Request) {
	request := &openapi.UpgradeTokenRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		coreerrors.HandleError(w, r, err)
		return
	}

	u, ok := h.consumeDeprecated(request.UploadToken)
	if !ok {
		unauthorized(w, r, "Upload token invalid")
		return
	}

	h.issue(w, r, http.StatusOK, u)
}

// validateRegistration returns nil when the request may be accepted.
func (h *Handler) validateRegistration(request *openapi.RegistrationRequest) *openapi.RegisterFailureDetail {
	detail := &openapi.RegisterFailureDetail{}
	failed := false

	fail := func(field **string, message string) {
		*field = ptr.To(message)
		failed = true
	}

	emailTaken, usernameTaken := h.users.conflicts(request.Email, request.Username)

	var email openapi.Email

	switch {
	case request.Email == "":
		fail(&detail.Email, messageEmailMissing)
	case email.UnmarshalText([]byte(request.Email)) != nil:
		fail(&detail.Email, messageEmailInvalid)
	case emailTaken:
		fail(&detail.Email, messageEmailInUse)
	}

	var username openapi.Username

	if request.Username == "" {
		fail(&detail.Username, messageUsernameMissing)
	} else if err := username.UnmarshalText([]byte(request.Username)); err != nil {
		switch {
		case errors.Is(err, openapi.ErrUsernameTooShort):
			fail(&detail.Username, messageUsernameTooShort)
		case errors.Is(err, openapi.ErrUsernameTooLong):
			fail(&detail.Username, messageUsernameTooLong)
		default:
			fail(&detail.Username, messageUsernameIsEmail)
		}
	} else if usernameTaken {
		fail(&detail.Username, messageUsernameInUse)
	}

	var password openapi.Password

	if request.Password == "" {
		fail(&detail.Password, messagePasswordMissing)
	} else if err := password.UnmarshalText([]byte(request.Password)); err != nil {
		if errors.Is(err, openapi.ErrPasswordTooShort) {
			fail(&detail.Password, messagePasswordTooShort)
		} else {
			fail(&detail.Password, messagePasswordTooLong)
		}
	}

	if !failed {
		return nil
	}

	return detail
}

func (h *Handler) PostApiUser(w http.ResponseWriter, r *http.Request) {
	log := log.FromContext(r.Context())

	request := &openapi.RegistrationRequest{}

	if err := util.ReadJSONBody(r, request); err != nil {
		coreerrors.HandleError(w, r, err)
		return
	}

	if detail := h.validateRegistration(request); detail != nil {
		util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, detail)
		return
	}

	if request.DryRun {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	u, err := h.users.create(request.Username, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailInUse):
			util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, &openapi.RegisterFailureDetail{Email: ptr.To(messageEmailInUse)})
		case errors.Is(err, ErrUsernameInUse):
			util.WriteJSONResponse(w, r, http.StatusUnprocessableEntity, &openapi.RegisterFailureDetail{Username: ptr.To(messageUsernameInUse)})
		default:
			coreerrors.HandleError(w, r, fmt.Errorf("creating user: %w", err))
		}

		return
	}

	log.Info("user registered", "username", u.username, "id", u.id)

	h.issue(w, r, http.StatusCreated, u)
}

func (h *Handler) DeleteApiUser(w http.ResponseWriter, r *http.Request) {
	log := log.FromContext(r.Context())

	u, revoke, ok := h.authenticate(r.Context(), r)
	if !ok {
		unauthorized(w, r, "Invalid JWT Token")
		return
	}

	h.users.remove(u.username)
	revoke()

	log.Info("user deleted", "username", u.username, "id", u.id)

	w.WriteHeader(http.StatusNoContent)
}

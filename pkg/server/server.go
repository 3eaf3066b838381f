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

// Package server implements a fake of the Catroweb authentication service,
// suitable for hermetic testing of the client.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/pkg/openapi"
	coreerrors "github.com/unikorn-cloud/core/pkg/server/errors"

	"sigs.k8s.io/controller-runtime/pkg/log"
)

var ErrMalformedOption = errors.New("malformed option")

// splitPair splits an option of the form key:value.
func splitPair(option, value string) (string, string, error) {
	key, rest, ok := strings.Cut(value, ":")
	if !ok || key == "" || rest == "" {
		return "", "", fmt.Errorf("%w: %s %q must be of the form a:b", ErrMalformedOption, option, value)
	}

	return key, rest, nil
}

// seed creates the configured users and deprecated tokens.
func seed(users *userStore, options *Options) (map[string]string, error) {
	for _, value := range options.SeedUsers {
		username, password, err := splitPair("seed-user", value)
		if err != nil {
			return nil, err
		}

		if _, err := users.create(username, username+"@catroweb.invalid", password); err != nil {
			return nil, fmt.Errorf("seeding user %s: %w", username, err)
		}
	}

	deprecated := map[string]string{}

	for _, value := range options.DeprecatedTokens {
		token, username, err := splitPair("deprecated-token", value)
		if err != nil {
			return nil, err
		}

		deprecated[token] = username
	}

	return deprecated, nil
}

// requestLogger attaches a request scoped logger to the context.
func requestLogger(ctx context.Context) func(http.Handler) http.Handler {
	logger := log.FromContext(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := logger.WithValues("requestID", middleware.GetReqID(r.Context()), "traceparent", r.Header.Get("Traceparent"), "userAgent", r.UserAgent())

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(log.IntoContext(r.Context(), l)))

			l.V(1).Info("request served", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
		})
	}
}

// schemaValidator rejects any request not described by the OpenAPI document.
func schemaValidator(router routers.Router) func(http.Handler) http.Handler {
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			route, params, err := router.FindRoute(r)
			if err != nil {
				coreerrors.HandleError(w, r, coreerrors.HTTPNotFound().WithError(err))
				return
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    r,
				PathParams: params,
				Route:      route,
				Options:    options,
			}

			if err := openapi3filter.ValidateRequest(r.Context(), input); err != nil {
				coreerrors.HandleError(w, r, coreerrors.OAuth2InvalidRequest("request body invalid").WithError(err))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// New returns the HTTP handler of the fake service.
func New(ctx context.Context, options *Options) (http.Handler, error) {
	doc, err := openapi.Schema(ctx)
	if err != nil {
		return nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("creating schema router: %w", err)
	}

	ttl := options.TokenTTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	users := newUserStore(options.PasswordCost)

	deprecated, err := seed(users, options)
	if err != nil {
		return nil, err
	}

	h := newHandler(users, newTokenIssuer(options.SigningKey, ttl), deprecated)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(ctx))
	r.Use(schemaValidator(router))

	endpoints := auth.NewEndpoints()

	r.Get(endpoints.Health(), h.GetApiHealth)
	r.Get(endpoints.Authentication(), h.GetApiAuthentication)
	r.Post(endpoints.Authentication(), h.PostApiAuthentication)
	r.Post(endpoints.UpgradeToken(), h.PostApiAuthenticationUpgrade)
	r.Post(endpoints.User(), h.PostApiUser)
	r.Delete(endpoints.User(), h.DeleteApiUser)

	return r, nil
}

// Run serves until the context is cancelled.
func Run(ctx context.Context, options *Options) error {
	log := log.FromContext(ctx)

	handler, err := New(ctx, options)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              options.ListenAddress,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error(err, "server shutdown failed")
		}
	}()

	log.Info("listening", "address", options.ListenAddress)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

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

// Package cli implements the commands of the catroweb-auth tool.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/pflag"

	"github.com/catrobat/catroweb-auth/pkg/auth"
	"github.com/catrobat/catroweb-auth/pkg/openapi"

	"k8s.io/utils/ptr"
)

var (
	ErrUsage                = errors.New("usage error")
	ErrUnknownCommand       = errors.New("unknown command")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrUnexpectedStatus     = errors.New("unexpected status code")
	ErrRegistrationRejected = errors.New("registration rejected")
)

// TokenStore persists the token between invocations.
type TokenStore interface {
	Token(ctx context.Context) (*string, error)
	SetToken(ctx context.Context, token string) error
	Username(ctx context.Context) (*string, error)
	SetUsername(ctx context.Context, username string) error
	ClearToken(ctx context.Context) error
}

type command func(ctx context.Context, args []string) error

// Runner dispatches commands.
type Runner struct {
	client   auth.Interface
	store    TokenStore
	out      io.Writer
	commands map[string]command
}

func New(client auth.Interface, store TokenStore, out io.Writer) *Runner {
	r := &Runner{
		client: client,
		store:  store,
		out:    out,
	}

	r.commands = map[string]command{
		"login":    r.login,
		"register": r.register,
		"check":    r.check,
		"upgrade":  r.upgrade,
		"delete":   r.delete,
		"logout":   r.logout,
	}

	return r
}

// Commands lists the available commands.
func (r *Runner) Commands() []string {
	names := make([]string, 0, len(r.commands))

	for name := range r.commands {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Run executes the command named by the first argument.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: a command is required, one of %v", ErrUsage, r.Commands())
	}

	command, ok := r.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}

	return command(ctx, args[1:])
}

func unexpected(statusCode int, errorBody *string) error {
	if errorBody != nil {
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, statusCode, *errorBody)
	}

	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, statusCode)
}

func (r *Runner) flagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.SetOutput(r.out)

	return flags
}

func (r *Runner) parse(flags *pflag.FlagSet, args []string, required ...string) error {
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	for _, name := range required {
		if !flags.Changed(name) {
			return fmt.Errorf("%w: --%s is required", ErrUsage, name)
		}
	}

	return nil
}

// remember persists a newly issued token.
func (r *Runner) remember(ctx context.Context, token *openapi.TokenResponse, username string) error {
	if token == nil || token.Token == "" {
		return fmt.Errorf("%w: no token issued", ErrUnexpectedStatus)
	}

	if err := r.store.SetToken(ctx, token.Token); err != nil {
		return err
	}

	if username == "" {
		return nil
	}

	return r.store.SetUsername(ctx, username)
}

// storedToken returns the persisted token or ErrNotLoggedIn.
func (r *Runner) storedToken(ctx context.Context) (string, error) {
	token, err := r.store.Token(ctx)
	if err != nil {
		return "", err
	}

	if token == nil {
		return "", ErrNotLoggedIn
	}

	return *token, nil
}

func (r *Runner) login(ctx context.Context, args []string) error {
	credentials := &openapi.Credentials{}

	flags := r.flagSet("login")
	flags.StringVar(&credentials.Username, "username", "", "User to log in as.")
	flags.StringVar(&credentials.Password, "password", "", "Password of the user.")

	if err := r.parse(flags, args, "username", "password"); err != nil {
		return err
	}

	bearer, err := r.store.Token(ctx)
	if err != nil {
		return err
	}

	response, err := r.client.Login(ctx, bearer, credentials)
	if err != nil {
		return err
	}

	if response.StatusCode != auth.StatusTokenOK {
		return unexpected(response.StatusCode, response.ErrorBody)
	}

	if err := r.remember(ctx, response.Body, credentials.Username); err != nil {
		return err
	}

	fmt.Fprintf(r.out, "logged in as %s\n", credentials.Username)

	return nil
}

func (r *Runner) register(ctx context.Context, args []string) error {
	request := &openapi.RegistrationRequest{}

	flags := r.flagSet("register")
	flags.StringVar(&request.Email, "email", "", "Email address of the new user.")
	flags.StringVar(&request.Username, "username", "", "Name of the new user.")
	flags.StringVar(&request.Password, "password", "", "Password of the new user.")
	flags.BoolVar(&request.AcceptedTerms, "accept-terms", false, "Accept the terms of use.")
	flags.BoolVar(&request.DryRun, "dry-run", false, "Only validate the registration.")

	if err := r.parse(flags, args, "email", "username", "password"); err != nil {
		return err
	}

	bearer, err := r.store.Token(ctx)
	if err != nil {
		return err
	}

	response, err := r.client.Register(ctx, bearer, request)
	if err != nil {
		return err
	}

	switch response.StatusCode {
	case auth.StatusRegisterOK:
		if err := r.remember(ctx, response.Body, request.Username); err != nil {
			return err
		}

		fmt.Fprintf(r.out, "registered %s\n", request.Username)
	case auth.StatusRegisterValidated:
		fmt.Fprintf(r.out, "registration of %s is valid\n", request.Username)
	case auth.StatusUnprocessableEntity:
		detail, err := auth.ParseRegisterFailure(response.ErrorBody)
		if err != nil {
			return err
		}

		fields := []struct {
			name    string
			message *string
		}{
			{"email", detail.Email},
			{"username", detail.Username},
			{"password", detail.Password},
		}

		for _, field := range fields {
			if field.message != nil {
				fmt.Fprintf(r.out, "%s: %s\n", field.name, *field.message)
			}
		}

		return ErrRegistrationRejected
	default:
		return unexpected(response.StatusCode, response.ErrorBody)
	}

	return nil
}

func (r *Runner) check(ctx context.Context, args []string) error {
	if err := r.parse(r.flagSet("check"), args); err != nil {
		return err
	}

	token, err := r.storedToken(ctx)
	if err != nil {
		return err
	}

	response, err := r.client.CheckToken(ctx, token)
	if err != nil {
		return err
	}

	if response.StatusCode != auth.StatusTokenOK {
		return unexpected(response.StatusCode, response.ErrorBody)
	}

	username, err := r.store.Username(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(r.out, "token for %s is valid\n", ptr.Deref(username, "unknown user"))

	return nil
}

func (r *Runner) upgrade(ctx context.Context, args []string) error {
	var deprecated openapi.DeprecatedToken

	flags := r.flagSet("upgrade")
	flags.StringVar(&deprecated.Value, "token", "", "Deprecated upload token to upgrade.")

	if err := r.parse(flags, args, "token"); err != nil {
		return err
	}

	response, err := r.client.UpgradeToken(ctx, deprecated)
	if err != nil {
		return err
	}

	if response.StatusCode != auth.StatusTokenOK {
		return unexpected(response.StatusCode, response.ErrorBody)
	}

	if err := r.remember(ctx, response.Body, ""); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "token upgraded")

	return nil
}

func (r *Runner) delete(ctx context.Context, args []string) error {
	if err := r.parse(r.flagSet("delete"), args); err != nil {
		return err
	}

	token, err := r.storedToken(ctx)
	if err != nil {
		return err
	}

	response, err := r.client.DeleteUser(ctx, token)
	if err != nil {
		return err
	}

	if response.StatusCode != auth.StatusUserDeleted {
		return unexpected(response.StatusCode, response.ErrorBody)
	}

	if err := r.store.ClearToken(ctx); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "user deleted")

	return nil
}

func (r *Runner) logout(ctx context.Context, args []string) error {
	if err := r.parse(r.flagSet("logout"), args); err != nil {
		return err
	}

	if err := r.store.ClearToken(ctx); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "logged out")

	return nil
}

// IsUsageError returns true if the error should be accompanied by help text.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand)
}


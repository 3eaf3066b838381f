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

package openapi

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

var (
	ErrInvalidEmail = errors.New("invalid email: must be of the form local@domain.tld")

	ErrUsernameTooShort = errors.New("invalid username: too short")
	ErrUsernameTooLong  = errors.New("invalid username: too long")
	ErrUsernameIsEmail  = errors.New("invalid username: must not be an email address")

	ErrPasswordTooShort = errors.New("invalid password: too short")
	ErrPasswordTooLong  = errors.New("invalid password: too long")
)

const (
	UsernameMinLength = 3
	UsernameMaxLength = 180
	PasswordMinLength = 6
	PasswordMaxLength = 4096
)

var emailValidationRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s.]+$`)

type Email struct {
	Value string
}

func (e *Email) UnmarshalText(text []byte) error {
	if !emailValidationRegex.Match(text) {
		return ErrInvalidEmail
	}

	*e = Email{
		Value: string(text),
	}

	return nil
}

type Username struct {
	Value string
}

func (n *Username) UnmarshalText(text []byte) error {
	length := utf8.RuneCount(text)

	switch {
	case length < UsernameMinLength:
		return ErrUsernameTooShort
	case length > UsernameMaxLength:
		return ErrUsernameTooLong
	case emailValidationRegex.Match(text):
		return ErrUsernameIsEmail
	}

	*n = Username{
		Value: string(text),
	}

	return nil
}

type Password struct {
	Value string
}

func (p *Password) UnmarshalText(text []byte) error {
	length := utf8.RuneCount(text)

	switch {
	case length < PasswordMinLength:
		return ErrPasswordTooShort
	case length > PasswordMaxLength:
		return ErrPasswordTooLong
	}

	*p = Password{
		Value: string(text),
	}

	return nil
}

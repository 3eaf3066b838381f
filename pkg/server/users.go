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

package server

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailInUse    = errors.New("email already in use")
	ErrUsernameInUse = errors.New("username already in use")
)

type user struct {
	id           string
	username     string
	email        string
	passwordHash []byte
}

// userStore is an in-memory user table indexed by id, username and
// case-folded email.
type userStore struct {
	lock       sync.Mutex
	cost       int
	byID       map[string]*user
	byUsername map[string]*user
	byEmail    map[string]*user
}

func newUserStore(cost int) *userStore {
	return &userStore{
		cost:       cost,
		byID:       map[string]*user{},
		byUsername: map[string]*user{},
		byEmail:    map[string]*user{},
	}
}

// digest reduces a password to a fixed length before bcrypt, which only
// accepts 72 bytes.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))

	return []byte(hex.EncodeToString(sum[:]))
}

func emailKey(email string) string {
	return strings.ToLower(email)
}

// conflicts reports which of the email and username are already taken.
func (s *userStore) conflicts(email, username string) (bool, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, emailTaken := s.byEmail[emailKey(email)]
	_, usernameTaken := s.byUsername[username]

	return emailTaken, usernameTaken
}

func (s *userStore) create(username, email, password string) (*user, error) {
	hash, err := bcrypt.GenerateFromPassword(digest(password), s.cost)
	if err != nil {
		return nil, err
	}

	u := &user{
		id:           uuid.NewString(),
		username:     username,
		email:        email,
		passwordHash: hash,
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	// Checked again under the lock, a concurrent registration may have won.
	if _, ok := s.byEmail[emailKey(email)]; ok {
		return nil, ErrEmailInUse
	}

	if _, ok := s.byUsername[username]; ok {
		return nil, ErrUsernameInUse
	}

	s.byID[u.id] = u
	s.byUsername[username] = u
	s.byEmail[emailKey(email)] = u

	return u, nil
}

func (s *userStore) get(username string) (*user, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.byUsername[username]

	return u, ok
}

// lookup returns the user that owns the id, a user deleted and registered
// again under the same name gets a new id.
func (s *userStore) lookup(id string) (*user, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.byID[id]

	return u, ok
}

// authenticate returns the user only when the password matches.
func (s *userStore) authenticate(username, password string) (*user, bool) {
	u, ok := s.get(username)
	if !ok {
		return nil, false
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, digest(password)); err != nil {
		return nil, false
	}

	return u, true
}

func (s *userStore) remove(username string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	u, ok := s.byUsername[username]
	if !ok {
		return false
	}

	delete(s.byID, u.id)
	delete(s.byUsername, username)
	delete(s.byEmail, emailKey(u.email))

	return true
}

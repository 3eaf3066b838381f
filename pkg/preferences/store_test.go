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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/catrobat/catroweb-auth/pkg/preferences"
)

func open(t *testing.T, path string) *preferences.Store {
	t.Helper()

	store, err := preferences.Open(t.Context(), path)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

// TestNoToken ensures an empty store reports no token rather than an empty one.
func TestNoToken(t *testing.T) {
	t.Parallel()

	store := open(t, filepath.Join(t.TempDir(), "preferences.db"))

	token, err := store.Token(t.Context())
	require.NoError(t, err)
	require.Nil(t, token)
}

func TestEmptyToken(t *testing.T) {
	t.Parallel()

	store := open(t, filepath.Join(t.TempDir(), "preferences.db"))

	require.NoError(t, store.SetToken(t.Context(), ""))

	token, err := store.Token(t.Context())
	require.NoError(t, err)
	require.NotNil(t, token)
	require.Empty(t, *token)
}

// TestPersistence ensures values survive reopening the store and that
// writes replace existing values.
func TestPersistence(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preferences.db")

	store, err := preferences.Open(t.Context(), path)
	require.NoError(t, err)
	require.NoError(t, store.SetToken(t.Context(), "first"))
	require.NoError(t, store.SetToken(t.Context(), "second"))
	require.NoError(t, store.SetUsername(t.Context(), "catroweb"))
	require.NoError(t, store.Close())

	store = open(t, path)

	token, err := store.Token(t.Context())
	require.NoError(t, err)
	require.NotNil(t, token)
	require.Equal(t, "second", *token)

	username, err := store.Username(t.Context())
	require.NoError(t, err)
	require.NotNil(t, username)
	require.Equal(t, "catroweb", *username)

	require.NoError(t, store.ClearToken(t.Context()))

	token, err = store.Token(t.Context())
	require.NoError(t, err)
	require.Nil(t, token)

	username, err = store.Username(t.Context())
	require.NoError(t, err)
	require.Nil(t, username)
}

func TestDeleteMissing(t *testing.T) {
	t.Parallel()

	store := open(t, filepath.Join(t.TempDir(), "preferences.db"))

	require.NoError(t, store.Delete(t.Context(), "missing"))
}

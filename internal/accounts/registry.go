// Package accounts implements the account registry: a durable mapping of
// username to credential digest with registration and verification.
package accounts

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/cryptox"
	"github.com/dmitrijs2005/taskkeeper/internal/storage/jsonstore"
)

// Registry holds the username → digest mapping in memory and rewrites the
// backing store in full on every mutation. Usernames are unique and
// accounts are never updated or removed once created.
type Registry struct {
	store *jsonstore.Store
	users map[string]string
}

func NewRegistry(store *jsonstore.Store) *Registry {
	return &Registry{store: store, users: make(map[string]string)}
}

// Load reads the account store into memory. An absent store file means an
// empty registry. A document whose values are not well-formed digests is
// rejected as malformed.
func (r *Registry) Load(ctx context.Context) error {
	users := make(map[string]string)
	if err := r.store.Load(ctx, &users); err != nil {
		return err
	}

	for name, digest := range users {
		if name == "" || !validDigest(digest) {
			return fmt.Errorf("%w: account %q has an invalid digest", jsonstore.ErrMalformed, name)
		}
	}

	r.users = users
	return nil
}

// Register creates an account for username with the digest of password and
// persists the registry. Returns common.ErrorAlreadyExists if the username
// is taken. On a failed save the in-memory mapping is rolled back so memory
// and disk stay consistent.
func (r *Registry) Register(ctx context.Context, username string, password []byte) error {
	if _, ok := r.users[username]; ok {
		return common.ErrorAlreadyExists
	}

	r.users[username] = cryptox.Digest(password)

	if err := r.store.Save(ctx, r.users); err != nil {
		delete(r.users, username)
		return fmt.Errorf("persist account %q: %w", username, err)
	}

	return nil
}

// Verify checks password against the stored digest for username. Returns
// common.ErrorNotFound for an unknown username and common.ErrorUnauthorized
// when the digest does not match.
func (r *Registry) Verify(ctx context.Context, username string, password []byte) error {
	digest, ok := r.users[username]
	if !ok {
		return common.ErrorNotFound
	}

	candidate := cryptox.Digest(password)
	if subtle.ConstantTimeCompare([]byte(digest), []byte(candidate)) != 1 {
		return common.ErrorUnauthorized
	}

	return nil
}

// Exists reports whether username is registered.
func (r *Registry) Exists(username string) bool {
	_, ok := r.users[username]
	return ok
}

func validDigest(s string) bool {
	if len(s) != cryptox.DigestSize {
		return false
	}
	return strings.Trim(s, "0123456789abcdef") == ""
}

package auth

import (
	"context"
	"crypto/sha256"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"eventhub/internal/domain"
)

type apiKeyChecker struct {
	hashes [][]byte
	// accepted holds sha256 digests of keys that already matched, so bcrypt runs once per key.
	accepted sync.Map
}

// NewAPIKeyChecker returns a checker that accepts any key matching one of the bcrypt hashes.
// With no hashes every key is rejected.
func NewAPIKeyChecker(hashes []string) domain.APIKeyChecker {
	c := &apiKeyChecker{}
	for _, h := range hashes {
		c.hashes = append(c.hashes, []byte(h))
	}
	return c
}

func (c *apiKeyChecker) Valid(_ context.Context, key string) bool {
	if key == "" {
		return false
	}
	digest := sha256.Sum256([]byte(key))
	if _, ok := c.accepted.Load(digest); ok {
		return true
	}
	for _, h := range c.hashes {
		if bcrypt.CompareHashAndPassword(h, []byte(key)) == nil {
			c.accepted.Store(digest, struct{}{})
			return true
		}
	}
	return false
}

package entity

import "errors"

// ErrInvalidAccess is returned by any attempt to read a credential back out as text.
var ErrInvalidAccess = errors.New("password is not readable")

// Hasher derives and checks password hashes.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(token, plain string) bool
}

// Credential is a one-way password hash. There is no way to recover the
// plaintext from it; it can only be compared against a candidate.
type Credential struct {
	hash string
}

// NewCredential hashes plain with h.
func NewCredential(h Hasher, plain string) (Credential, error) {
	token, err := h.Hash(plain)
	if err != nil {
		return Credential{}, err
	}
	return Credential{hash: token}, nil
}

// CredentialFromHash wraps a token loaded from storage.
func CredentialFromHash(token string) Credential {
	return Credential{hash: token}
}

// Hash returns the stored token, never the plaintext.
func (c Credential) Hash() string { return c.hash }

func (c Credential) IsZero() bool { return c.hash == "" }

// Verify reports whether plain matches the credential.
func (c Credential) Verify(h Hasher, plain string) bool {
	if c.hash == "" {
		return false
	}
	return h.Verify(c.hash, plain)
}

func (c Credential) String() string { return "[REDACTED]" }

func (c Credential) GoString() string { return "entity.Credential{[REDACTED]}" }

func (c Credential) MarshalText() ([]byte, error) { return nil, ErrInvalidAccess }

func (c Credential) MarshalJSON() ([]byte, error) { return nil, ErrInvalidAccess }

package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const (
	HashMethodPBKDF2 = "pbkdf2"
	HashMethodBcrypt = "bcrypt"

	DefaultPBKDF2Iterations = 600000

	pbkdf2Prefix  = "pbkdf2:sha256"
	saltLength    = 16
	saltAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pbkdf2KeySize = sha256.Size
)

var ErrUnknownHashMethod = errors.New("unknown password hash method")

// PasswordHasher derives and checks salted password hashes.
// New hashes use Method; Verify accepts both pbkdf2:sha256 and bcrypt tokens.
type PasswordHasher struct {
	Method     string
	Iterations int
	BcryptCost int
}

func NewPasswordHasher(method string, iterations, bcryptCost int) (*PasswordHasher, error) {
	switch method {
	case "", HashMethodPBKDF2:
		method = HashMethodPBKDF2
	case HashMethodBcrypt:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashMethod, method)
	}
	if iterations <= 0 {
		iterations = DefaultPBKDF2Iterations
	}
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &PasswordHasher{Method: method, Iterations: iterations, BcryptCost: bcryptCost}, nil
}

// Hash returns a new salted token for plain.
func (h *PasswordHasher) Hash(plain string) (string, error) {
	if h.Method == HashMethodBcrypt {
		b, err := bcrypt.GenerateFromPassword([]byte(plain), h.BcryptCost)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	salt, err := genSalt(saltLength)
	if err != nil {
		return "", err
	}
	dk := pbkdf2.Key([]byte(plain), []byte(salt), h.Iterations, pbkdf2KeySize, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", pbkdf2Prefix, h.Iterations, salt, hex.EncodeToString(dk)), nil
}

// Verify reports whether plain re-derives to token. Malformed tokens never match.
func (h *PasswordHasher) Verify(token, plain string) bool {
	if strings.HasPrefix(token, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(token), []byte(plain)) == nil
	}
	return verifyPBKDF2(token, plain)
}

// token: pbkdf2:sha256:<iterations>$<salt>$<hex>
func verifyPBKDF2(token, plain string) bool {
	parts := strings.SplitN(token, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, digest := parts[0], parts[1], parts[2]
	if !strings.HasPrefix(method, pbkdf2Prefix+":") {
		return false
	}
	iterations, err := strconv.Atoi(strings.TrimPrefix(method, pbkdf2Prefix+":"))
	if err != nil || iterations <= 0 {
		return false
	}
	want, err := hex.DecodeString(digest)
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(plain), []byte(salt), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}

func genSalt(n int) (string, error) {
	var sb strings.Builder
	sb.Grow(n)
	limit := big.NewInt(int64(len(saltAlphabet)))
	for i := 0; i < n; i++ {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		sb.WriteByte(saltAlphabet[idx.Int64()])
	}
	return sb.String(), nil
}

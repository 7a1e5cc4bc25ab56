package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reverseHasher struct{}

func (reverseHasher) Hash(plain string) (string, error) {
	r := []rune(plain)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return "rev$" + string(r), nil
}

func (h reverseHasher) Verify(token, plain string) bool {
	want, _ := h.Hash(plain)
	return token == want
}

func TestCredential_Verify(t *testing.T) {
	c, err := NewCredential(reverseHasher{}, "secret")
	require.NoError(t, err)

	assert.Equal(t, "rev$terces", c.Hash())
	assert.True(t, c.Verify(reverseHasher{}, "secret"))
	assert.False(t, c.Verify(reverseHasher{}, "secretx"))
	assert.False(t, Credential{}.Verify(reverseHasher{}, ""))
}

func TestCredential_NotReadable(t *testing.T) {
	c, err := NewCredential(reverseHasher{}, "secret")
	require.NoError(t, err)

	_, err = json.Marshal(c)
	assert.ErrorIs(t, err, ErrInvalidAccess)
	_, err = c.MarshalText()
	assert.ErrorIs(t, err, ErrInvalidAccess)

	for _, s := range []string{fmt.Sprint(c), fmt.Sprintf("%v", c), fmt.Sprintf("%#v", c)} {
		assert.NotContains(t, s, "terces")
		assert.True(t, strings.Contains(s, "REDACTED"))
	}
}

func TestUser_JSONOmitsCredential(t *testing.T) {
	c, err := NewCredential(reverseHasher{}, "secret")
	require.NoError(t, err)
	u := User{ID: 1, Name: "Alice", Email: "a@x.com", Password: c}

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "terces")
	assert.NotContains(t, string(b), "password")
	assert.Equal(t, "<Name Alice>", u.String())
}

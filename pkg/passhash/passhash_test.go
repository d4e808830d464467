package passhash_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/datastore/pkg/passhash"
)

func Test_Hash_And_Verify(t *testing.T) {
	t.Parallel()

	encoded, err := passhash.Hash("s3cret-passw0rd")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "argon2id$"))

	assert.True(t, passhash.Verify("s3cret-passw0rd", encoded))
	assert.False(t, passhash.Verify("wrong-password", encoded))
}

func Test_Hash_SaltsAreUnique(t *testing.T) {
	t.Parallel()

	a, err := passhash.Hash("same-input")
	require.NoError(t, err)
	b, err := passhash.Hash("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
	assert.True(t, passhash.Verify("same-input", a))
	assert.True(t, passhash.Verify("same-input", b))
}

func Test_Verify_ParamsComeFromEncoding(t *testing.T) {
	t.Parallel()

	// A hash written under a cheaper profile must keep verifying even though
	// DefaultParams differs.
	cheap := passhash.Params{Memory: 8 * 1024, Iterations: 1, Parallelism: 1, SaltLen: 8, KeyLen: 16}
	encoded, err := passhash.HashWithParams("legacy", cheap)
	require.NoError(t, err)
	assert.True(t, passhash.Verify("legacy", encoded))
}

func Test_Verify_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "wrong scheme", encoded: "bcrypt$10$salt$key"},
		{name: "missing fields", encoded: "argon2id$3$65536"},
		{name: "bad base64 salt", encoded: "argon2id$3$65536$2$!!!$AAAA"},
		{name: "bad iterations", encoded: "argon2id$x$65536$2$AAAA$AAAA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.False(t, passhash.Verify("anything", tt.encoded))
		})
	}
}

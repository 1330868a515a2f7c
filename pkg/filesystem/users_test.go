package filesystem

import (
	"os"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLookupOwnerResolvesCurrentUser is a function.
func TestLookupOwnerResolvesCurrentUser(t *testing.T) {
	current, err := user.Current()
	if err != nil {
		t.Skip("no user database available")
	}

	name, ok := LookupOwner(uint32(os.Getuid()))
	assert.True(t, ok)
	assert.EqualValues(t, current.Username, name)
}

// TestLookupOwnerUnresolvableUid is a function.
func TestLookupOwnerUnresolvableUid(t *testing.T) {
	// uid from the reserved -2 range, present in no sane passwd database
	name, ok := LookupOwner(4294967294)
	assert.False(t, ok)
	assert.Empty(t, name)
}

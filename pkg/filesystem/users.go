package filesystem

import (
	"os/user"
	"strconv"
)

// LookupOwner resolves a numeric uid to a display name. The second return
// value is false when no matching user record exists; that is not an error,
// the owner column is simply left empty.
func LookupOwner(uid uint32) (string, bool) {
	owner, err := user.LookupId(strconv.FormatUint(uint64(uid), 10))
	if err != nil {
		return "", false
	}
	return owner.Username, true
}

package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// EntityID identifies an account, token, topic or schedule in
// shard.realm.num form, e.g. "0.0.12345".
type EntityID struct {
	Shard int64
	Realm int64
	Num   int64
}

// ParseEntityID parses a shard.realm.num identifier.
func ParseEntityID(s string) (EntityID, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return EntityID{}, fmt.Errorf("invalid entity id %q: want shard.realm.num", s)
	}
	nums := make([]int64, 3)
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return EntityID{}, fmt.Errorf("invalid entity id %q", s)
		}
		nums[i] = n
	}
	return EntityID{Shard: nums[0], Realm: nums[1], Num: nums[2]}, nil
}

// MustEntityID parses an identifier and panics on failure. Test helper
// and literal-constant use only.
func MustEntityID(s string) EntityID {
	id, err := ParseEntityID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// IsValidEntityID reports whether s is a well-formed shard.realm.num id.
func IsValidEntityID(s string) bool {
	_, err := ParseEntityID(s)
	return err == nil
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d.%d", id.Shard, id.Realm, id.Num)
}

// IsZero reports whether id is the zero value, used for optional ids.
func (id EntityID) IsZero() bool {
	return id.Shard == 0 && id.Realm == 0 && id.Num == 0
}

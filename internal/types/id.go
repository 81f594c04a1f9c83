// README: Opaque identifiers for booking sessions and requests.
package types

import "github.com/google/uuid"

type ID string

func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID accepts only canonical UUID strings.
func ParseID(v string) (ID, bool) {
	u, err := uuid.Parse(v)
	if err != nil {
		return "", false
	}
	return ID(u.String()), true
}

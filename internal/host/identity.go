package host

import (
	"fmt"

	"github.com/desertthunder/playaxis/internal/shared"
)

// UUIDIdentity issues opaque selection tokens, one per (column, row), stable
// for the lifetime of a view model build.
//
// Tokens are memoized so replaying a row (manual step backwards, loop
// restart) selects the same identity the host saw the first time.
type UUIDIdentity struct {
	issued map[string]string
}

// NewUUIDIdentity creates an empty identity builder. Use one per view model
// build so a rebuilt model gets fresh tokens.
func NewUUIDIdentity() *UUIDIdentity {
	return &UUIDIdentity{issued: make(map[string]string)}
}

// Identity returns the token for the given column and row, issuing a new
// UUIDv4 on first sight.
func (u *UUIDIdentity) Identity(column string, row int) string {
	key := fmt.Sprintf("%s:%d", column, row)
	if id, ok := u.issued[key]; ok {
		return id
	}
	id := shared.GenerateID()
	u.issued[key] = id
	return id
}

package authn

import "github.com/pkg/errors"

var (
	ErrCancel          = errors.New("cancel")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// User is an authenticated identity: a subject within an identity
// provider.
type User interface {
	UserSubject() string
	UserProvider() string
}

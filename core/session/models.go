package session

// Platform roles a visitor can register with.
const (
	RoleStudent = "student"
	RoleTrainer = "trainer"
	RoleAdmin   = "admin"
)

var AllRoles = []string{RoleStudent, RoleTrainer, RoleAdmin}

// Identity is the client's placeholder for "who holds the token".
// The token is never decoded or validated against the auth backend;
// whenever a token exists the identity is this opaque value.
type Identity struct{}

// Credentials is the transient registration/login payload. It is used to
// build one request and never stored.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,platformrole"`
}

// placeholderUserID stands in for the identity the token would carry if it
// were decoded. Views that need a user id fall back to it.
const placeholderUserID = 1

package models

// Credentials is the request body for login and registration.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the backend's answer to a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SessionStatus describes the lifecycle state of the client session.
type SessionStatus int

const (
	// StatusUnauthenticated is the state at process start, after logout,
	// and after any request rejected as unauthorized.
	StatusUnauthenticated SessionStatus = iota
	// StatusAuthenticating is the state while a login request is in flight.
	StatusAuthenticating
	// StatusAuthenticated is the state after a successful login.
	StatusAuthenticated
)

// String implements [fmt.Stringer].
func (s SessionStatus) String() string {
	switch s {
	case StatusAuthenticating:
		return "authenticating"
	case StatusAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

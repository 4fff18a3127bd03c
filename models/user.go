package models

// CreateUserRequest is the body of POST /users.
// It reaches the handler only after passing schema validation.
type CreateUserRequest struct {
	// Username is between 3 and 20 characters long.
	Username string `json:"username"`

	// Email is a syntactically valid email address.
	Email string `json:"email"`

	// Age is a positive integer.
	Age int `json:"age"`

	// Tags is an optional list of labels.
	Tags []string `json:"tags,omitempty"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
}

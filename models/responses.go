package models

import "time"

// ErrorResponse is the uniform failure body. It is used by the error
// boundary (500), the identity and authorization stages (401/403) and
// request validation (400, with Errors filled in).
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// NewErrorResponse returns a failure body with the given message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}

// MessageResponse is a body carrying only a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// ProtectedResponse is returned by /api/protected and echoes the claims of
// the verified credential.
type ProtectedResponse struct {
	Message string `json:"message"`
	Claims  Claims `json:"claims"`
}

// PublicDataResponse is the payload of the cached /api/public-data route.
type PublicDataResponse struct {
	Message     string    `json:"message"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// DashboardResponse greets an authorized administrator.
type DashboardResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// Post is a blog post stub.
type Post struct {
	ID int64 `json:"id,string"`
}

// Author is a blog author stub.
type Author struct {
	ID int64 `json:"id,string"`
}

// PostsResponse lists posts.
type PostsResponse struct {
	Posts []Post `json:"posts"`
}

// PostResponse wraps a single post.
type PostResponse struct {
	Post Post `json:"post"`
}

// AuthorsResponse lists authors.
type AuthorsResponse struct {
	Authors []Author `json:"authors"`
}

// AuthorResponse wraps a single author.
type AuthorResponse struct {
	Author Author `json:"author"`
}

package models

// APIResponse is the common JSON envelope returned by every endpoint.
// Success reports whether the request was processed; Message carries a
// human-readable description and never exposes internal details.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

// LoginResponse is the JSON envelope returned by the login and token
// verification endpoints. Token is present only on a successful login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

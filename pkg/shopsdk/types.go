package shopsdk

import "time"

// SignupRequest registers a new account in either namespace.
type SignupRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangePasswordRequest rotates the caller's password.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// CreateProductRequest adds a product to the catalog.
type CreateProductRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents"`
}

// Account is the serialized account shape returned by the service.
type Account struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthResponse is returned by signup and login. Token already carries the
// "Bearer " prefix and can be used directly as an Authorization header value.
type AuthResponse struct {
	Token string  `json:"token"`
	User  Account `json:"user"`
}

// SuccessResponse acknowledges mutations with no body.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// Product is a catalog entry.
type Product struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"admin_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

// HealthChecks reports per-dependency health.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

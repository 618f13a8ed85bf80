package models

// AuthResponse is returned by registration and login.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    UserView `json:"user"`
}

// CurrentUserResponse is returned by the "me" endpoint.
type CurrentUserResponse struct {
	User UserView `json:"user"`
}

// MessageResponse is the generic JSON body for messages and errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginRequest is the request body of the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the request body of the registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email_address"`
	Password string `json:"password" validate:"required,min=6"`
}

// User converts the request into a new local [User].
func (r RegisterRequest) User() User {
	return User{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
		Role:     RoleUser,
	}
}

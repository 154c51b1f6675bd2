package api

// TokenResult is the body returned by /register and /login.
type TokenResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// NewUser is the JSON body of the /user/ signup variant.
type NewUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminStatus is the body returned by the admin check.
type AdminStatus struct {
	StatusCode int    `json:"status_code"`
	Message    string `json:"message"`
}

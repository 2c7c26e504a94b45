package dto

type LoginInput struct {
	Email    string `json:"email" binding:"notblank"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Role        string `json:"role"`
}

type WhoAmIResponse struct {
	Env           string  `json:"env"`
	Version       string  `json:"version"`
	Authenticated bool    `json:"authenticated"`
	UserID        *uint   `json:"user_id,omitempty"`
	Email         *string `json:"email,omitempty"`
	Role          *string `json:"role,omitempty"`
}

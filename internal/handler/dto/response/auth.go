package response

import "github.com/Atsu2017-hub/web-ramen/internal/usecase/queries"

type AuthResponse struct {
	AccessToken string                      `json:"access_token"`
	TokenType   string                      `json:"token_type"`
	User        *queries.AuthorizedUserView `json:"user"`
}

func NewAuthResponse(token string, user *queries.AuthorizedUserView) AuthResponse {
	return AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user,
	}
}

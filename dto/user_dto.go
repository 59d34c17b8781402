package dto

import (
	"time"

	"github.com/printfarm/printfarm-backend/models"
)

type APIUser struct {
	Id        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func AdaptUserDto(user models.User) APIUser {
	return APIUser{
		Id:        user.Id,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// LoginForm is an OAuth2 password request form, the username is the user's email.
type LoginForm struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type APIAccessToken struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func AdaptAccessTokenDto(token models.AccessToken) APIAccessToken {
	return APIAccessToken{
		AccessToken: token.Token,
		TokenType:   token.TokenType,
		ExpiresAt:   token.ExpiresAt,
	}
}

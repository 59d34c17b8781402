package models

import "time"

type User struct {
	Id             int64
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

type CreateUserInput struct {
	Email          string
	HashedPassword string
}

type AccessToken struct {
	Token     string
	TokenType string
	ExpiresAt time.Time
}

type TokenClaims struct {
	Email     string
	ExpiresAt time.Time
}

type SeedConfiguration struct {
	AdminEmail    string
	AdminPassword string
}

package port

import (
	"context"

	"github.com/nikolayk812/pharmacy/internal/domain"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, userID int64) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
}

type RegisterRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)

	// ParseToken returns the user ID a bearer token was issued for.
	ParseToken(token string) (int64, error)
}

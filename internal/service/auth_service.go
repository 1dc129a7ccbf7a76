package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/nikolayk812/pharmacy/internal/domain"
	"github.com/nikolayk812/pharmacy/internal/port"
	"golang.org/x/crypto/bcrypt"
)

// Kenyan mobile numbers, with or without country prefix.
var phonePattern = regexp.MustCompile(`^(?:\+254|254|0)?7\d{8}$`)

type authService struct {
	users    port.UserRepository
	tokenKey []byte
	tokenTTL time.Duration
}

func NewAuth(users port.UserRepository, tokenKey string, tokenTTL time.Duration) (port.AuthService, error) {
	if users == nil {
		return nil, errors.New("users repository is nil")
	}

	if tokenKey == "" {
		return nil, errors.New("token key is empty")
	}

	if tokenTTL <= 0 {
		return nil, errors.New("token TTL is not positive")
	}

	return &authService{
		users:    users,
		tokenKey: []byte(tokenKey),
		tokenTTL: tokenTTL,
	}, nil
}

func (s *authService) Register(ctx context.Context, req port.RegisterRequest) (domain.User, string, error) {
	var u domain.User

	phone, err := NormalizePhone(req.Phone)
	if err != nil {
		return u, "", fmt.Errorf("NormalizePhone: %w", err)
	}

	if req.Name == "" {
		return u, "", errors.New("name is empty")
	}

	if len(req.Password) < 6 {
		return u, "", errors.New("password is too short")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return u, "", fmt.Errorf("bcrypt.GenerateFromPassword: %w", err)
	}

	user, err := s.users.CreateUser(ctx, domain.User{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		Phone:        phone,
		PasswordHash: string(hash),
	})
	if err != nil {
		return u, "", fmt.Errorf("users.CreateUser: %w", err)
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return u, "", fmt.Errorf("issueToken: %w", err)
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	var u domain.User

	user, err := s.users.GetUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return u, "", domain.ErrInvalidCredentials
		}
		return u, "", fmt.Errorf("users.GetUserByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return u, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return u, "", fmt.Errorf("issueToken: %w", err)
	}

	return user, token, nil
}

func (s *authService) ParseToken(tokenStr string) (int64, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.tokenKey, nil
	})
	if err != nil {
		return 0, fmt.Errorf("jwt.ParseWithClaims: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, errors.New("invalid token claims")
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseInt[%s]: %w", claims.Subject, err)
	}

	return userID, nil
}

func (s *authService) issueToken(userID int64) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.tokenKey)
	if err != nil {
		return "", fmt.Errorf("token.SignedString: %w", err)
	}

	return token, nil
}

// NormalizePhone validates a Kenyan mobile number and rewrites it
// to the +254 form.
func NormalizePhone(phone string) (string, error) {
	phone = strings.TrimSpace(phone)

	if !phonePattern.MatchString(phone) {
		return "", fmt.Errorf("phone[%s] is not valid", phone)
	}

	switch {
	case strings.HasPrefix(phone, "+254"):
		return phone, nil
	case strings.HasPrefix(phone, "254"):
		return "+" + phone, nil
	case strings.HasPrefix(phone, "0"):
		return "+254" + phone[1:], nil
	default:
		return "+254" + phone, nil
	}
}

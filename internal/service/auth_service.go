package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/rodgersmanaseh/cedy1/internal/domain"
	"github.com/rodgersmanaseh/cedy1/internal/repository"
	"github.com/rodgersmanaseh/cedy1/internal/validator"
)

// Auth errors. Login failures collapse into ErrInvalidCredentials so a
// caller cannot probe which usernames exist.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

const tokenIssuer = "cedy-news"

// LoginResult carries the issued token and the authenticated user.
type LoginResult struct {
	Token string
	User  domain.User
}

type accessClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService authenticates users against bcrypt hashes and issues HS256
// tokens for the admin surface.
type AuthService struct {
	users     repository.UserRepository
	validator *validator.Validator
	secret    []byte
	tokenTTL  time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, v *validator.Validator, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		validator: v,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
	}
}

// Login checks the credentials and returns a signed token on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := s.validator.ValidateCredentials(username, password); err != nil {
		return nil, err
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{Token: token, User: *user}, nil
}

func (s *AuthService) generateToken(user *domain.User, now time.Time) (string, error) {
	claims := accessClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   strconv.FormatInt(user.ID, 10),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken checks the signature and registered claims of a token and
// returns the identity it carries.
func (s *AuthService) VerifyToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return &domain.TokenClaims{
		UserID:   userID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}

// CreateUser stores a new user with a bcrypt hash of the password. The
// plaintext is never stored.
func (s *AuthService) CreateUser(ctx context.Context, username, password, role string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user %q: %w", username, err)
	}
	return user, nil
}

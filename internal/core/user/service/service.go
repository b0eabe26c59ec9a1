package userapp

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"

	userEntity "weblog/internal/core/user"
	sessionPort "weblog/internal/ports/session"
	userPort "weblog/internal/ports/user"
)

const tokenTTL = 24 * time.Hour

// UserService handles registration, login and profile management.
type UserService struct {
	UserRepository userPort.UserRepository
	Sessions       sessionPort.Store
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, sessions sessionPort.Store, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		Sessions:       sessions,
		jwtKey:         jwtKey,
	}
}

// RegisterUser creates a new account with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, username, password, firstName, lastName, email string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByUsername(username)
	if err == nil && existing != nil {
		return nil, userPort.ErrUsernameTaken
	}
	if err != nil && !errors.Is(err, userPort.ErrNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hashed),
	}

	created, err := s.UserRepository.Create(u)
	if err != nil {
		return nil, err
	}
	return toDTO(created), nil
}

// LoginUser verifies credentials and issues a signed JWT.
func (s *UserService) LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		// Unknown accounts look exactly like a wrong password.
		if errors.Is(err, userPort.ErrNotFound) {
			return nil, userPort.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, userPort.ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(tokenTTL)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Id:        uuid.Must(uuid.NewV4()).String(),
		Issuer:    "weblog",
		ExpiresAt: expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtKey)
	if err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// LogoutUser revokes the token until its natural expiry.
func (s *UserService) LogoutUser(ctx context.Context, tokenID string, expiresAt int64) error {
	ttl := time.Until(time.Unix(expiresAt, 0))
	if ttl <= 0 {
		return nil
	}
	return s.Sessions.Revoke(ctx, tokenID, ttl)
}

// GetProfile resolves a user by their public username.
func (s *UserService) GetProfile(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

// UpdateProfile changes the editable profile fields of the named user.
func (s *UserService) UpdateProfile(ctx context.Context, username string, update userPort.ProfileUpdate) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		return nil, err
	}

	u.FirstName = update.FirstName
	u.LastName = update.LastName
	u.Email = update.Email
	if err := s.UserRepository.Update(u); err != nil {
		return nil, err
	}
	return toDTO(u), nil
}

func toDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:        u.ID.String(),
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

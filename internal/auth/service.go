package auth

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/mrlokans/bookgoblin/internal/config"
	"github.com/mrlokans/bookgoblin/internal/database"
	"github.com/mrlokans/bookgoblin/internal/entities"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{3,64}$`)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrUsernameInvalid    = errors.New("username must be 3-64 characters, alphanumeric and underscore/hyphen only")
)

// UserStore is the subset of the users repository the service needs.
type UserStore interface {
	Create(username, passwordHash string) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	GetByTokenHash(hash string) (*entities.User, error)
	SetToken(userID uint, hash string, issuedAt time.Time) (bool, error)
}

// Service registers users and resolves API tokens to principals.
type Service struct {
	users  UserStore
	config config.Auth
	now    func() time.Time
}

// NewService creates a new authentication service.
func NewService(users UserStore, cfg config.Auth) *Service {
	return &Service{
		users:  users,
		config: cfg,
		now:    time.Now,
	}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(username, password string) (*entities.User, error) {
	if !usernamePattern.MatchString(username) {
		return nil, ErrUsernameInvalid
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	passwordHash, err := HashPassword(password, s.config.BcryptCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(username, passwordHash)
	if errors.Is(err, database.ErrIntegrityViolation) {
		// lost a race with a concurrent registration
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// Login checks credentials and issues a fresh API token, replacing any
// previous one. The plaintext token is returned once; only its hash is kept.
func (s *Service) Login(username, password string) (string, *entities.User, error) {
	user, err := s.users.GetByUsername(username)
	if err != nil {
		return "", nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// IssueToken generates and stores a new API token for a user.
func (s *Service) IssueToken(userID uint) (string, error) {
	plaintext, hash, err := GenerateAPIToken()
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	ok, err := s.users.SetToken(userID, hash, s.now())
	if err != nil {
		return "", fmt.Errorf("failed to save token: %w", err)
	}
	if !ok {
		return "", database.ErrUserNotFound
	}
	return plaintext, nil
}

// ValidateToken checks a plaintext token and returns the associated user.
// Returns ErrTokenExpired if the token is past its expiry time.
func (s *Service) ValidateToken(token string) (*entities.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.users.GetByTokenHash(HashToken(token))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}

	if s.config.TokenExpiry > 0 && user.TokenCreatedAt != nil {
		if s.now().Sub(*user.TokenCreatedAt) > s.config.TokenExpiry {
			return nil, ErrTokenExpired
		}
	}

	return user, nil
}

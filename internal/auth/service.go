package auth

import (
	"errors"
	"strings"
	"time"

	"backend-parkhub/internal/shared/apperr"
	"backend-parkhub/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	store    *store.Store
	validate *validator.Validate
	log      *zap.Logger
	now      func() time.Time
}

func NewService(st *store.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		store:    st,
		validate: validator.New(),
		log:      log,
		now:      time.Now,
	}
}

// LoginOrRegister treats login and registration identically: an unknown email
// creates a record, a known one gets a fresh token. Reissuing the token
// invalidates whatever token that user held before.
func (s *Service) LoginOrRegister(email string) (Session, error) {
	if err := s.validate.Struct(LoginRequest{Email: email}); err != nil {
		return Session{}, apperr.ErrInvalidEmail
	}
	// the validator accepts dotless domains; this surface never did
	if at := strings.LastIndex(email, "@"); at < 0 || !strings.Contains(email[at:], ".") {
		return Session{}, apperr.ErrInvalidEmail
	}

	dir, err := s.readDirectory()
	if err != nil {
		return Session{}, err
	}

	now := s.now().UTC()
	var user *User
	for i := range dir.Users {
		if dir.Users[i].Email == email {
			user = &dir.Users[i]
			break
		}
	}

	if user != nil {
		user.Token = uuid.NewString()
		user.LastLogin = now
	} else {
		dir.Users = append(dir.Users, User{
			ID:        uuid.NewString(),
			Email:     email,
			Token:     uuid.NewString(),
			CreatedAt: now,
			LastLogin: now,
		})
		user = &dir.Users[len(dir.Users)-1]
	}

	if err := s.store.WriteJSON(store.UsersPath(), dir); err != nil {
		s.log.Error("write users", zap.Error(err))
		return Session{}, apperr.ErrStorage
	}

	return Session{ID: user.ID, Email: user.Email, Token: user.Token}, nil
}

// VerifyToken resolves a bearer token to an identity by scanning the user
// table. Only the most recently issued token per user matches.
func (s *Service) VerifyToken(token string) (Identity, error) {
	if token == "" {
		return Identity{}, apperr.ErrTokenRequired
	}

	dir, err := s.readDirectory()
	if err != nil {
		return Identity{}, err
	}

	for _, u := range dir.Users {
		if u.Token == token {
			return Identity{ID: u.ID, Email: u.Email}, nil
		}
	}
	return Identity{}, apperr.ErrTokenInvalid
}

// readDirectory returns an empty directory when the users file is absent.
func (s *Service) readDirectory() (Directory, error) {
	dir := Directory{Users: []User{}}
	err := s.store.ReadJSON(store.UsersPath(), &dir)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.log.Error("read users", zap.Error(err))
		return dir, apperr.ErrStorage
	}
	return dir, nil
}

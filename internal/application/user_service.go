package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fullstack-game/api/internal/domain/entity"
	repo "github.com/fullstack-game/api/internal/domain/repository"
	"github.com/fullstack-game/api/pkg/helpers"
)

var (
	// ErrUserNotFound covers both an unknown correo at login and an unknown
	// id on replace/delete; handlers choose the status per operation.
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// UserService implements the user use-cases: registration with password
// hashing and role normalization, login, listing and record maintenance.
type UserService struct {
	Repo   repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewUserService(r repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, JWT: jwt, Logger: logger}
}

// Register hashes the password, normalizes the role and stores the user.
// Email uniqueness is intentionally not checked: the store accepts duplicate
// correos and login resolves to whichever document the store returns first.
func (s *UserService) Register(ctx context.Context, nombre, correo, password, rol string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Name:     nombre,
		Email:    correo,
		Password: hash,
		Role:     entity.NormalizeRole(rol),
	}
	if err := s.Repo.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Login resolves the correo and compares the password against the stored
// bcrypt hash. The two failure causes stay distinguishable so the handler can
// reproduce the distinct login error messages.
func (s *UserService) Login(ctx context.Context, correo, password string) (*entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, correo)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrWrongPassword
	}
	return u, nil
}

// IssueToken signs an access token for the user. No route currently returns
// or requires one; the capability is kept wired for the auth middleware.
func (s *UserService) IssueToken(u *entity.User) (string, time.Time, error) {
	return s.JWT.Generate(u.ID.Hex(), u.Role)
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.Repo.FindAll(ctx)
}

func (s *UserService) Replace(ctx context.Context, id string, fields repo.UserFields) (*entity.User, error) {
	u, err := s.Repo.ReplaceByID(ctx, id, fields)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

func (s *UserService) Delete(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

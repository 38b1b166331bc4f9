package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/fullstack-game/api/internal/domain/entity"
	repo "github.com/fullstack-game/api/internal/domain/repository"
)

var ErrProductNotFound = errors.New("product not found")

// ProductService is a thin delegation layer over the product collection;
// request validation happens at the handler, the store enforces nothing.
type ProductService struct {
	Repo   repo.ProductRepository
	Logger *logrus.Logger
}

func NewProductService(r repo.ProductRepository, logger *logrus.Logger) *ProductService {
	return &ProductService{Repo: r, Logger: logger}
}

func (s *ProductService) Create(ctx context.Context, nombre string, precio float64, descripcion string) (*entity.Product, error) {
	p := &entity.Product{
		Name:        nombre,
		Price:       precio,
		Description: descripcion,
	}
	if err := s.Repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ProductService) Replace(ctx context.Context, id string, fields repo.ProductFields) (*entity.Product, error) {
	p, err := s.Repo.ReplaceByID(ctx, id, fields)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

func (s *ProductService) Delete(ctx context.Context, id string) (*entity.Product, error) {
	p, err := s.Repo.DeleteByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return p, err
}

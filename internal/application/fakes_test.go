package application

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fullstack-game/api/internal/domain/entity"
	"github.com/fullstack-game/api/internal/domain/repository"
)

// In-memory gateways standing in for the Mongo collections. Ids are assigned
// on insert like the real store does.

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]entity.User{}}
}

func (f *fakeUserRepo) Insert(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = *u
	return nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, correo string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == correo {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) ReplaceByID(_ context.Context, id string, fields repository.UserFields) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if fields.Name != nil {
		u.Name = *fields.Name
	}
	if fields.Email != nil {
		u.Email = *fields.Email
	}
	f.users[id] = u
	return &u, nil
}

func (f *fakeUserRepo) DeleteByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.users, id)
	return &u, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]entity.Product{}}
}

func (f *fakeProductRepo) Insert(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = *p
	return nil
}

func (f *fakeProductRepo) FindAll(_ context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) ReplaceByID(_ context.Context, id string, fields repository.ProductFields) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if fields.Name != nil {
		p.Name = *fields.Name
	}
	if fields.Price != nil {
		p.Price = *fields.Price
	}
	if fields.Description != nil {
		p.Description = *fields.Description
	}
	f.products[id] = p
	return &p, nil
}

func (f *fakeProductRepo) DeleteByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.products, id)
	return &p, nil
}

// errProductRepo fails every operation, exercising the store-error paths.
type errProductRepo struct{}

var errStore = errors.New("store unavailable")

func (errProductRepo) Insert(context.Context, *entity.Product) error { return errStore }
func (errProductRepo) FindAll(context.Context) ([]entity.Product, error) {
	return nil, errStore
}
func (errProductRepo) ReplaceByID(context.Context, string, repository.ProductFields) (*entity.Product, error) {
	return nil, errStore
}
func (errProductRepo) DeleteByID(context.Context, string) (*entity.Product, error) {
	return nil, errStore
}

var (
	_ repository.UserRepository    = (*fakeUserRepo)(nil)
	_ repository.ProductRepository = (*fakeProductRepo)(nil)
	_ repository.ProductRepository = errProductRepo{}
)

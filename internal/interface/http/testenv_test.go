package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fullstack-game/api/internal/application"
	"github.com/fullstack-game/api/internal/domain/entity"
	"github.com/fullstack-game/api/internal/domain/repository"
	handlers "github.com/fullstack-game/api/internal/interface/http"
	"github.com/fullstack-game/api/internal/router/modules"
	"github.com/fullstack-game/api/pkg/helpers"
	"github.com/fullstack-game/api/pkg/validation"
)

var setupOnce sync.Once

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]entity.User
}

func (f *memUserRepo) Insert(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u.ID = primitive.NewObjectID()
	f.users[u.ID.Hex()] = *u
	return nil
}

func (f *memUserRepo) FindAll(_ context.Context) ([]entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.User{}
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *memUserRepo) FindByEmail(_ context.Context, correo string) (*entity.User, error) {
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

func (f *memUserRepo) ReplaceByID(_ context.Context, id string, fields repository.UserFields) (*entity.User, error) {
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

func (f *memUserRepo) DeleteByID(_ context.Context, id string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.users, id)
	return &u, nil
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]entity.Product
}

func (f *memProductRepo) Insert(_ context.Context, p *entity.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	f.products[p.ID.Hex()] = *p
	return nil
}

func (f *memProductRepo) FindAll(_ context.Context) ([]entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Product{}
	for _, p := range f.products {
		out = append(out, p)
	}
	return out, nil
}

func (f *memProductRepo) ReplaceByID(_ context.Context, id string, fields repository.ProductFields) (*entity.Product, error) {
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

func (f *memProductRepo) DeleteByID(_ context.Context, id string) (*entity.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	delete(f.products, id)
	return &p, nil
}

// newTestServer builds the full routing surface against in-memory gateways.
func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	setupOnce.Do(func() {
		gin.SetMode(gin.TestMode)
		validation.Init()
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	userSvc := application.NewUserService(&memUserRepo{users: map[string]entity.User{}}, jwt, logger)
	productSvc := application.NewProductService(&memProductRepo{products: map[string]entity.Product{}}, logger)

	e := gin.New()
	root := e.Group("")
	modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt).Register(root)
	modules.NewProductModule(handlers.NewProductHandler(productSvc, logger)).Register(root)
	return e
}

func doJSON(t *testing.T, e *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type productEnvelope struct {
	Mensaje   string            `json:"mensaje"`
	Error     string            `json:"error"`
	Detalles  map[string]string `json:"detalles"`
	Producto  *entity.Product   `json:"producto"`
	Productos []entity.Product  `json:"productos"`
}

type userEnvelope struct {
	Mensaje  string            `json:"mensaje"`
	Error    string            `json:"error"`
	Detalles map[string]string `json:"detalles"`
	Usuario  *entity.User      `json:"usuario"`
	Usuarios []entity.User     `json:"usuarios"`
}

package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/todoapp/apiserver/internal/auth"
	"github.com/todoapp/apiserver/internal/services"
	"github.com/todoapp/apiserver/internal/store"
	"github.com/todoapp/apiserver/types"
)

const testSecret = "handler-test-secret"

// fakeUserRepo is an in-memory services.UserRepository.
type fakeUserRepo struct {
	users  map[int]types.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]types.User), nextID: 1}
}

func (f *fakeUserRepo) seed(user types.User) {
	f.users[user.ID] = user
	if user.ID >= f.nextID {
		f.nextID = user.ID + 1
	}
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int) (types.User, error) {
	user, ok := f.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (types.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, id int, passwordHash string) error {
	user, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.PasswordHash = passwordHash
	f.users[id] = user
	return nil
}

func (f *fakeUserRepo) UpdatePhoneNumber(_ context.Context, id int, phoneNumber string) error {
	user, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	user.PhoneNumber = phoneNumber
	f.users[id] = user
	return nil
}

// fakeTodoRepo is an in-memory services.TodoRepository.
type fakeTodoRepo struct {
	todos  map[int]types.Todo
	nextID int
}

func newFakeTodoRepo() *fakeTodoRepo {
	return &fakeTodoRepo{todos: make(map[int]types.Todo), nextID: 1}
}

func (f *fakeTodoRepo) seed(todo types.Todo) {
	f.todos[todo.ID] = todo
	if todo.ID >= f.nextID {
		f.nextID = todo.ID + 1
	}
}

func (f *fakeTodoRepo) ListByOwner(_ context.Context, ownerID int) ([]types.Todo, error) {
	out := make([]types.Todo, 0)
	for _, todo := range f.todos {
		if todo.OwnerID == ownerID {
			out = append(out, todo)
		}
	}
	return out, nil
}

func (f *fakeTodoRepo) ListAll(_ context.Context) ([]types.Todo, error) {
	out := make([]types.Todo, 0)
	for _, todo := range f.todos {
		out = append(out, todo)
	}
	return out, nil
}

func (f *fakeTodoRepo) Get(_ context.Context, id int) (types.Todo, error) {
	todo, ok := f.todos[id]
	if !ok {
		return types.Todo{}, store.ErrNotFound
	}
	return todo, nil
}

func (f *fakeTodoRepo) Create(_ context.Context, todo types.Todo) (types.Todo, error) {
	todo.ID = f.nextID
	f.nextID++
	f.todos[todo.ID] = todo
	return todo, nil
}

func (f *fakeTodoRepo) Update(_ context.Context, todo types.Todo) (types.Todo, error) {
	if _, ok := f.todos[todo.ID]; !ok {
		return types.Todo{}, store.ErrNotFound
	}
	f.todos[todo.ID] = todo
	return todo, nil
}

func (f *fakeTodoRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.todos[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.todos, id)
	return nil
}

// testEnv wires the full router over in-memory repositories, seeded with
// alice (id 7, user), bob (id 9, user), and root (id 1, admin), plus one todo
// for alice and one for bob.
type testEnv struct {
	router    *chi.Mux
	userRepo  *fakeUserRepo
	todoRepo  *fakeTodoRepo
	tokens    *auth.TokenService
	hasher    *auth.PasswordHasher
	authn     *auth.Authenticator
	aliceTodo types.Todo
	bobTodo   types.Todo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	hasher := auth.NewPasswordHasher(4, 6)
	tokens, err := auth.NewTokenService(testSecret, 20*time.Minute)
	require.NoError(t, err)

	userRepo := newFakeUserRepo()
	todoRepo := newFakeTodoRepo()

	seedUser := func(id int, username, role, password string, active bool) {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		userRepo.seed(types.User{
			ID:           id,
			Username:     username,
			Email:        username + "@example.com",
			FirstName:    username,
			LastName:     "Test",
			Role:         role,
			PasswordHash: hash,
			IsActive:     active,
		})
	}
	seedUser(1, "root", "admin", "rootpass", true)
	seedUser(7, "alice", "user", "alicepass", true)
	seedUser(9, "bob", "user", "bobpass", true)

	aliceTodo := types.Todo{ID: 11, Title: "alice todo", Description: "belongs to alice", Priority: 3, OwnerID: 7}
	bobTodo := types.Todo{ID: 12, Title: "bob todo", Description: "belongs to bob", Priority: 2, OwnerID: 9}
	todoRepo.seed(aliceTodo)
	todoRepo.seed(bobTodo)

	userService := services.NewUserService(userRepo, hasher)
	todoService := services.NewTodoService(todoRepo)
	authn := auth.NewAuthenticator(userRepo, hasher, tokens)
	authMiddleware := RequireAuth(tokens)

	router := chi.NewRouter()
	router.Get("/healthz", Healthz)
	router.Route("/auth", func(r chi.Router) {
		AuthRouter(r, userService, authn, tokens, 1000)
	})
	router.Route("/todos", func(r chi.Router) {
		TodoRouter(r, todoService, authMiddleware)
	})
	router.Route("/admin", func(r chi.Router) {
		AdminRouter(r, todoService, authMiddleware)
	})
	router.Route("/user", func(r chi.Router) {
		UserRouter(r, userService, authMiddleware)
	})

	return &testEnv{
		router:    router,
		userRepo:  userRepo,
		todoRepo:  todoRepo,
		tokens:    tokens,
		hasher:    hasher,
		authn:     authn,
		aliceTodo: aliceTodo,
		bobTodo:   bobTodo,
	}
}

func (e *testEnv) tokenFor(t *testing.T, username, password string) string {
	t.Helper()
	token, err := e.authn.Login(context.Background(), username, password)
	require.NoError(t, err)
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) doJSON(t *testing.T, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = strings.NewReader(string(data))
	}
	return e.do(t, method, path, token, body, "application/json")
}

func (e *testEnv) doForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&value))
	return value
}

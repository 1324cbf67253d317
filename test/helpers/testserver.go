package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"immo_backend/internal/app"
	"immo_backend/internal/auth"
	"immo_backend/internal/config"
	"immo_backend/internal/logger"
	"immo_backend/internal/metrics"
	"immo_backend/internal/models"
	"immo_backend/internal/notifier"
	"immo_backend/internal/repositories/memory"
)

const testJWTSecret = "my_super_secret_key_for_tests_12345"

// TestServer - полный HTTP-стек поверх репозиториев в памяти
type TestServer struct {
	Server     *httptest.Server
	Store      *memory.Store
	Dispatcher *notifier.Dispatcher
	Metrics    *metrics.Metrics
	Tokens     *auth.TokenManager
	Config     *config.Config
}

// NewTestServer поднимает сервер; mutate позволяет поправить конфиг до сборки роутера
func NewTestServer(t *testing.T, mutate ...func(cfg *config.Config)) *TestServer {
	t.Helper()
	logger.Init("test")

	cfg := config.Defaults()
	cfg.Server.Env = "test"
	cfg.JWT.Secret = testJWTSecret
	cfg.RateLimit.MessagesPerMinute = 600
	cfg.RateLimit.Burst = 100
	for _, m := range mutate {
		m(cfg)
	}

	store := memory.NewStore()
	repos := store.Container()
	m := metrics.New()
	dispatcher := notifier.NewDispatcher(notifier.DispatcherOptions{
		QueueSize: cfg.Notifications.QueueSize,
		Workers:   2,
		Metrics:   m,
	})
	emitter := notifier.NewEmitter(notifier.EmitterDeps{
		Queue:         dispatcher,
		Properties:    repos.Properties,
		Notifications: repos.Notifications,
		Metrics:       m,
		AreaLimit:     cfg.Notifications.AreaFanoutLimit,
	})
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWTTTL())

	router, _ := app.SetupRouter(cfg, app.Dependencies{
		Repos:    repos,
		Notifier: emitter,
		Tokens:   tokens,
		Metrics:  m,
	})

	ts := &TestServer{
		Server:     httptest.NewServer(router),
		Store:      store,
		Dispatcher: dispatcher,
		Metrics:    m,
		Tokens:     tokens,
		Config:     cfg,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = ts.Dispatcher.Close(ctx)
}

// CreateUser создает пользователя и выпускает для него токен
func (ts *TestServer) CreateUser(t *testing.T, name string, role models.UserRole) (string, *models.User) {
	t.Helper()
	user := &models.User{Name: name, Email: fmt.Sprintf("%s.%d@immo.tn", name, time.Now().UnixNano()), Role: role}
	if err := ts.Store.Container().Users.Create(context.Background(), user); err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", name, err)
	}
	token, err := ts.Tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		t.Fatalf("Не удалось выпустить токен: %v", err)
	}
	return token, user
}

// WaitNotifications дожидается обработки всех поставленных уведомлений
func (ts *TestServer) WaitNotifications(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := ts.Dispatcher.Flush(ctx); err != nil {
		t.Fatalf("Очередь уведомлений не опустела: %v", err)
	}
}

func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}

// DecodeJSON - разбор тела ответа с падением теста при ошибке
func DecodeJSON(t *testing.T, body string, v interface{}) {
	t.Helper()
	if err := json.Unmarshal([]byte(body), v); err != nil {
		t.Fatalf("Некорректный JSON в ответе: %v\n%s", err, body)
	}
}

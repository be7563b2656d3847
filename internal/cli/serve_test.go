package cli

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// mockHandler creates a simple test handler
func mockHandler(response string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(response))
	})
}

// createTestDeps creates ServerDependencies with default mock handlers for testing
func createTestDeps(port string) ServerDependencies {
	return ServerDependencies{
		ServerConfig:   config.ServerConfig{Port: port},
		Logger:         logging.Discard(),
		IndexHandler:   mockHandler("index"),
		CartHandler:    mockHandler("cart"),
		ProductHandler: mockHandler("product"),
		StaticHandler:  mockHandler("static"),
		APIHandlers: map[string]http.Handler{
			"login":   mockHandler("login"),
			"orders/": mockHandler("orders"),
		},
	}
}

// startTestServer starts a server with the given dependencies and returns listener, server, and port
func startTestServer(t *testing.T, deps ServerDependencies) (net.Listener, *http.Server, int) {
	t.Helper()
	listener, server, err := StartServer(deps)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	return listener, server, port
}

// httpGet makes an HTTP GET request and returns response body and status
func httpGet(t *testing.T, url string) (string, int) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("Failed to make request to %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return string(body), resp.StatusCode
}

func TestStartServer_SuccessfulStartup(t *testing.T) {
	// GIVEN
	deps := createTestDeps("0")

	// WHEN
	listener, server, port := startTestServer(t, deps)
	defer listener.Close()
	defer server.Close()

	// THEN
	if port == 0 {
		t.Error("Expected non-zero port")
	}

	time.Sleep(50 * time.Millisecond)
	body, status := httpGet(t, fmt.Sprintf("http://localhost:%d/", port))
	if status != http.StatusOK {
		t.Errorf("Expected status 200, got %d", status)
	}
	if body != "index" {
		t.Errorf("Expected 'index', got '%s'", body)
	}
}

func TestStartServer_InvalidPort(t *testing.T) {
	// GIVEN
	deps := createTestDeps("99999")

	// WHEN
	listener, server, err := StartServer(deps)

	// THEN
	if err == nil {
		listener.Close()
		server.Close()
		t.Error("Expected error for invalid port, got nil")
	}
}

func TestStartServer_PortAlreadyInUse(t *testing.T) {
	// GIVEN
	existingListener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Failed to create test listener: %v", err)
	}
	defer existingListener.Close()
	port := existingListener.Addr().(*net.TCPAddr).Port

	deps := createTestDeps(fmt.Sprintf("%d", port))

	// WHEN
	listener, server, err := StartServer(deps)

	// THEN
	if err == nil {
		listener.Close()
		server.Close()
		t.Error("Expected error for port already in use, got nil")
	}
}

func TestNewRouter_AllRoutesWork(t *testing.T) {
	router := NewRouter(createTestDeps("0"))

	testCases := []struct {
		path           string
		expectedStatus int
		expected       string
	}{
		{"/", http.StatusOK, "index"},
		{"/index.html", http.StatusOK, "index"},
		{"/cart.html", http.StatusOK, "cart"},
		{"/prod.html?idp_=1", http.StatusOK, "product"},
		{"/static/store.js", http.StatusOK, "static"},
		{"/api/login", http.StatusOK, "login"},
		{"/api/orders/ABCDEF12", http.StatusOK, "orders"},
		{"/api/unknown", http.StatusNotFound, ""},
		{"/checkout", http.StatusNotFound, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != tc.expectedStatus {
				t.Errorf("Expected status %d, got %d", tc.expectedStatus, w.Code)
			}
			if tc.expected != "" && w.Body.String() != tc.expected {
				t.Errorf("Expected '%s', got '%s'", tc.expected, w.Body.String())
			}
		})
	}
}

func TestRequestLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	handler := RequestLogger(logger, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fine", nil))
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.DebugLevel {
		t.Fatalf("Expected debug entry, got %+v", entry)
	}
	if entry.Data["status"] != http.StatusOK || entry.Data["path"] != "/fine" {
		t.Errorf("Unexpected fields: %v", entry.Data)
	}

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))
	entry = hook.LastEntry()
	if entry.Level != logrus.WarnLevel {
		t.Errorf("Expected warn entry for 5xx, got %s", entry.Level)
	}
	if entry.Data["method"] != http.MethodPost {
		t.Errorf("Expected method POST, got %v", entry.Data["method"])
	}
}

func TestStorefront_ServesReplica(t *testing.T) {
	storefront := NewMemoryStorefront()
	defer storefront.Close()

	deps, err := storefront.ServerDependencies(config.ServerConfig{Port: "0"}, logging.Discard())
	if err != nil {
		t.Fatalf("Failed to build dependencies: %v", err)
	}
	srv := httptest.NewServer(NewRouter(deps))
	defer srv.Close()

	body, status := httpGet(t, srv.URL+"/")
	if status != http.StatusOK || !strings.Contains(body, `id="signin2"`) {
		t.Errorf("Index page not served: %d", status)
	}

	body, status = httpGet(t, srv.URL+"/static/store.js")
	if status != http.StatusOK || !strings.Contains(body, "function showcart()") {
		t.Errorf("Static script not served: %d", status)
	}

	_, status = httpGet(t, srv.URL+"/prod.html?idp_=15")
	if status != http.StatusOK {
		t.Errorf("Expected product page, got %d", status)
	}

	resp, err := http.Post(srv.URL+"/api/signup", "application/json",
		strings.NewReader(`{"username":"testuser","password":"testpass"}`))
	if err != nil {
		t.Fatalf("Signup request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected signup 200, got %d", resp.StatusCode)
	}

	_, status = httpGet(t, srv.URL+"/api/orders/NOPE1234")
	if status != http.StatusNotFound {
		t.Errorf("Expected order lookup 404, got %d", status)
	}
}

func TestNewStorefront_PostgresConfigMissing(t *testing.T) {
	getenv := func(string) string { return "" }
	_, err := NewStorefront(config.StoreConfig{Backend: config.StoreBackendPostgres}, getenv, logging.Discard())
	if err == nil || !strings.Contains(err.Error(), "POSTGRES_") {
		t.Errorf("Expected missing Postgres configuration error, got %v", err)
	}
}

func TestStartServer_GracefulShutdown(t *testing.T) {
	// GIVEN
	deps := createTestDeps("0")
	listener, server, port := startTestServer(t, deps)
	defer listener.Close()

	time.Sleep(50 * time.Millisecond)
	if _, status := httpGet(t, fmt.Sprintf("http://localhost:%d/", port)); status != http.StatusOK {
		t.Fatal("Server not responding")
	}

	// WHEN
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Failed to shutdown server gracefully: %v", err)
	}

	// THEN
	time.Sleep(100 * time.Millisecond)
	if _, err := http.Get(fmt.Sprintf("http://localhost:%d/", port)); err == nil {
		t.Error("Expected error after shutdown, server still responding")
	}
}

func TestWaitForShutdown_Signals(t *testing.T) {
	for _, sig := range []os.Signal{syscall.SIGTERM, syscall.SIGINT} {
		t.Run(sig.String(), func(t *testing.T) {
			// GIVEN
			listener, server, _ := startTestServer(t, createTestDeps("0"))
			defer listener.Close()
			shutdown := make(chan os.Signal, 1)

			// WHEN
			errCh := make(chan error, 1)
			go func() {
				errCh <- WaitForShutdown(server, shutdown, logging.Discard())
			}()
			shutdown <- sig

			// THEN
			select {
			case err := <-errCh:
				if err != nil {
					t.Errorf("Expected nil error, got: %v", err)
				}
			case <-time.After(5 * time.Second):
				t.Fatal("WaitForShutdown did not complete")
			}
		})
	}
}

func TestWaitForShutdown_WithActiveRequests(t *testing.T) {
	// GIVEN
	deps := createTestDeps("0")
	deps.IndexHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte("done"))
	})
	listener, server, port := startTestServer(t, deps)
	defer listener.Close()

	time.Sleep(50 * time.Millisecond)
	requestComplete := make(chan bool, 1)
	go func() {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%d/", port))
		if err == nil {
			resp.Body.Close()
		}
		requestComplete <- true
	}()
	time.Sleep(50 * time.Millisecond)

	// WHEN
	shutdown := make(chan os.Signal, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WaitForShutdown(server, shutdown, logging.Discard())
	}()
	shutdown <- syscall.SIGTERM

	// THEN
	select {
	case <-requestComplete:
	case <-time.After(2 * time.Second):
		t.Error("Request did not complete in time")
	}
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected nil error, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("WaitForShutdown did not complete")
	}
}

func TestWaitForShutdown_ForcesCloseAfterTimeout(t *testing.T) {
	// GIVEN
	deps := createTestDeps("0")
	deps.IndexHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
	})
	listener, server, port := startTestServer(t, deps)
	defer listener.Close()

	go http.Get(fmt.Sprintf("http://localhost:%d/", port))
	time.Sleep(100 * time.Millisecond)

	// WHEN
	shutdown := make(chan os.Signal, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WaitForShutdownWithTimeout(server, shutdown, time.Nanosecond, logging.Discard())
	}()
	shutdown <- syscall.SIGTERM

	// THEN
	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Forced close did not complete")
	}
}

func TestRunServe_FullIntegration(t *testing.T) {
	// GIVEN
	deps := createTestDeps("0")

	// WHEN
	errCh := make(chan error, 1)
	go func() {
		errCh <- RunServe(deps)
	}()
	time.Sleep(100 * time.Millisecond)

	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("Failed to get process: %v", err)
	}
	if err := p.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("Failed to send signal: %v", err)
	}

	// THEN
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Expected nil error, got: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Server did not shut down within timeout")
	}
}

func TestRunServe_StartupFailure(t *testing.T) {
	if err := RunServe(createTestDeps("99999")); err == nil {
		t.Error("Expected error for invalid port, got nil")
	}
}

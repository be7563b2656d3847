package cli

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/logging"
	"github.com/demoblaze/storefront-e2e/internal/scenarios"
)

func TestRunScenarios_UnknownScenario(t *testing.T) {
	var out bytes.Buffer
	err := RunScenarios(context.Background(), RunDependencies{
		BrowserConfig: config.BrowserConfig{Engine: config.EngineChromium, ViewportWidth: 1, ViewportHeight: 1},
		SuiteConfig:   config.SuiteConfig{BaseURL: config.DefaultBaseURL, Scenarios: []string{"checkout"}},
		Logger:        logging.Discard(),
		Out:           &out,
	})

	if err == nil || !strings.Contains(err.Error(), scenarios.ErrUnknownScenario.Error()) {
		t.Fatalf("Expected unknown scenario error, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no report, got %q", out.String())
	}
}

func TestStartLocalStorefront(t *testing.T) {
	url, stop, err := StartLocalStorefront(logging.Discard())
	if err != nil {
		t.Fatalf("Failed to start local storefront: %v", err)
	}
	defer stop()

	if !strings.HasPrefix(url, "http://127.0.0.1:") {
		t.Errorf("Expected loopback URL, got %s", url)
	}

	body, status := httpGet(t, url+"/cart.html")
	if status != http.StatusOK || !strings.Contains(body, `data-target="#orderModal"`) {
		t.Errorf("Cart page not served: %d", status)
	}

	stop()
	if resp, err := http.Get(url + "/"); err == nil {
		resp.Body.Close()
		t.Error("Expected error after stop, server still responding")
	}
}

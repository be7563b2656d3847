package browser

import (
	"testing"
	"time"

	"github.com/demoblaze/storefront-e2e/internal/config"
	"github.com/demoblaze/storefront-e2e/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchOptions(t *testing.T) {
	tests := []struct {
		name         string
		cfg          config.BrowserConfig
		wantHeadless bool
		wantSlowMo   *float64
	}{
		{
			name:         "headless without slow-mo",
			cfg:          config.BrowserConfig{Headless: true},
			wantHeadless: true,
		},
		{
			name:       "headed with slow-mo",
			cfg:        config.BrowserConfig{Headless: false, SlowMo: 250 * time.Millisecond},
			wantSlowMo: func() *float64 { v := 250.0; return &v }(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := launchOptions(tt.cfg)
			require.NotNil(t, opts.Headless)
			assert.Equal(t, tt.wantHeadless, *opts.Headless)
			assert.Equal(t, tt.wantSlowMo, opts.SlowMo)
		})
	}
}

func TestContextOptions_Viewport(t *testing.T) {
	opts := contextOptions(config.BrowserConfig{ViewportWidth: 1024, ViewportHeight: 768})
	require.NotNil(t, opts.Viewport)
	assert.Equal(t, 1024, opts.Viewport.Width)
	assert.Equal(t, 768, opts.Viewport.Height)
}

func TestLaunch_RejectsInvalidConfig(t *testing.T) {
	_, err := Launch(config.BrowserConfig{Engine: "netscape", ViewportWidth: 1, ViewportHeight: 1}, logging.Discard())
	assert.ErrorContains(t, err, "unsupported browser")
}

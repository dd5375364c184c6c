package upstream

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"chayuan/normalize"
)

// WeatherIcons holds the backend icon-name to SVG URL map. It is loaded
// lazily, once per process: the first caller triggers the fetch, concurrent
// callers share the in-flight load through the singleflight group, and a
// successful result is cached for the process lifetime. A failed load is not
// cached, so icon resolution degrades to presets for that request and the
// next request retries.
type WeatherIcons struct {
	client *Client

	group  singleflight.Group
	mu     sync.RWMutex
	icons  map[string]string
	loaded bool
}

func NewWeatherIcons(client *Client) *WeatherIcons {
	return &WeatherIcons{client: client}
}

// EnsureLoaded returns the icon map, fetching it if this is the first use.
// It never fails: on error the returned map is empty.
func (w *WeatherIcons) EnsureLoaded(ctx context.Context) map[string]string {
	w.mu.RLock()
	if w.loaded {
		icons := w.icons
		w.mu.RUnlock()
		return icons
	}
	w.mu.RUnlock()

	result, _, _ := w.group.Do("weather-templates", func() (any, error) {
		payload, err := w.client.GetJSON(ctx, "/api/public/weather-templates")
		if err != nil {
			w.client.log.Warn("weather templates load failed; falling back to preset icons", zap.Error(err))
			return map[string]string{}, nil
		}
		icons := normalize.WeatherIconMap(payload)
		w.mu.Lock()
		w.icons = icons
		w.loaded = true
		w.mu.Unlock()
		w.client.log.Info("weather templates loaded", zap.Int("icons", len(icons)))
		return icons, nil
	})
	return result.(map[string]string)
}

// Loaded reports whether a successful load has happened.
func (w *WeatherIcons) Loaded() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loaded
}

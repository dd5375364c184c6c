package main

import (
	"context"
	"encoding/json"
	"net/http"
	"regexp"
	"time"
)

var monthParamRe = regexp.MustCompile(`^\d{4}-\d{2}$`)

// handleGrowthData serves one month of daily logs plus the monthly rollup.
// The weather-template map is ensured before adapting, so icon resolution
// can use backend SVGs when the templates endpoint is reachable.
func (a *App) handleGrowthData(w http.ResponseWriter, r *http.Request) {
	month := r.URL.Query().Get("month")
	if month == "" {
		month = time.Now().Format("2006-01")
	}
	if !monthParamRe.MatchString(month) {
		http.Error(w, "month must be YYYY-MM", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 12*time.Second)
	defer cancel()

	iconMap := a.weather.EnsureLoaded(ctx)
	data, err := a.backend.GrowthData(ctx, month, iconMap)
	if err != nil {
		http.Error(w, "加载失败", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

// handleWeatherTemplates exposes the cached icon map, mainly for the
// frontend's preloading step.
func (a *App) handleWeatherTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	iconMap := a.weather.EnsureLoaded(ctx)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"loaded":  a.weather.Loaded(),
		"iconMap": iconMap,
	})
}

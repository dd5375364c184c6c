package main

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

func (a *App) handleLandingPage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	page, err := a.backend.LandingPage(ctx)
	if err != nil {
		http.Error(w, "加载失败", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(page)
}

func (a *App) handleAdoptionPlans(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	plans, err := a.backend.AdoptionPlans(ctx)
	if err != nil {
		http.Error(w, "加载失败", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(plans)
}

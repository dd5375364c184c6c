package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"chayuan/models"
	"chayuan/upstream"
)

// handleListCategories serves the category list for routing and the filter bar.
func (a *App) handleListCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	categories, err := a.backend.Categories(ctx)
	if err != nil {
		http.Error(w, "加载失败", http.StatusBadGateway)
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}
	_ = json.NewEncoder(w).Encode(categories)
}

type batchListResp struct {
	Category models.Category            `json:"category"`
	Batches  []models.BatchListItemView `json:"batches"`
}

// handleListBatches resolves the category by slug, then walks the batch
// query fallback queue. An empty batch list is a legitimate 200, never an
// error: the frontend renders an empty state for it.
func (a *App) handleListBatches(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	ctx, cancel := context.WithTimeout(r.Context(), 25*time.Second)
	defer cancel()

	category, found, err := a.backend.CategoryBySlug(ctx, slug)
	if err != nil {
		http.Error(w, "加载失败", http.StatusBadGateway)
		return
	}
	if !found {
		http.Error(w, "unknown category", http.StatusNotFound)
		return
	}

	categorySlug := category.Slug
	if categorySlug == "" {
		categorySlug = slug
	}
	batches := a.backend.BatchesByCategory(ctx, category.Name, categorySlug)
	_ = json.NewEncoder(w).Encode(batchListResp{Category: category, Batches: batches})
}

// handleBatchDetail serves one batch's full story.
func (a *App) handleBatchDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	detail, err := a.backend.BatchDetail(ctx, id)
	if err != nil {
		if errors.Is(err, upstream.ErrNotFound) {
			http.Error(w, "batch not found", http.StatusNotFound)
			return
		}
		http.Error(w, "加载失败", http.StatusBadGateway)
		return
	}
	_ = json.NewEncoder(w).Encode(detail)
}

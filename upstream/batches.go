package upstream

import (
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"chayuan/models"
	"chayuan/normalize"
)

// batchStrategy is one candidate query convention for the batch list. The
// backend has supported seven of these over its lifetime.
type batchStrategy struct {
	label            string
	path             string
	filterByCategory bool
}

// BatchesByCategory tries each query strategy in order and returns the first
// non-empty normalized list. The loop is sequential on purpose: later
// strategies only exist as fallbacks, and speculative parallel requests
// would load the backend for nothing in the common case where the first
// strategy answers. Per-strategy failures are logged and absorbed; an
// exhausted queue yields an empty list, not an error.
func (c *Client) BatchesByCategory(ctx context.Context, categoryName, categorySlug string) []models.BatchListItemView {
	slug := strings.TrimSpace(categorySlug)
	encodedName := url.QueryEscape(categoryName)

	var queue []batchStrategy
	if slug != "" {
		encodedSlug := url.QueryEscape(slug)
		queue = append(queue,
			batchStrategy{"categories/" + slug + "/batches", "/api/public/categories/" + url.PathEscape(slug) + "/batches", false},
			batchStrategy{"slug=" + slug, "/api/public/batches?slug=" + encodedSlug, false},
			batchStrategy{"category_slug=" + slug, "/api/public/batches?category_slug=" + encodedSlug, false},
			batchStrategy{"categorySlug=" + slug, "/api/public/batches?categorySlug=" + encodedSlug, false},
		)
	}
	queue = append(queue,
		batchStrategy{"category=" + categoryName, "/api/public/batches?category=" + encodedName, false},
		batchStrategy{"category_name=" + categoryName, "/api/public/batches?category_name=" + encodedName, false},
		batchStrategy{"all-batches", "/api/public/batches", true},
	)

	for _, strategy := range queue {
		payload, err := c.GetJSON(ctx, strategy.path)
		if err != nil {
			c.log.Warn("batch query strategy failed",
				zap.String("strategy", strategy.label), zap.Error(err))
			continue
		}

		batches := normalize.BatchList(payload)
		if strategy.filterByCategory {
			filtered := batches[:0]
			for _, batch := range batches {
				if batch.CategoryName == categoryName {
					filtered = append(filtered, batch)
				}
			}
			batches = filtered
		}

		c.log.Debug("batch query strategy answered",
			zap.String("strategy", strategy.label), zap.Int("count", len(batches)))
		if len(batches) > 0 {
			return batches
		}
	}

	c.log.Warn("no batch strategy yielded data",
		zap.String("category", categoryName), zap.String("slug", slug))
	return []models.BatchListItemView{}
}

// BatchDetail fetches and normalizes one batch's full story.
func (c *Client) BatchDetail(ctx context.Context, id string) (models.BatchDetailView, error) {
	payload, err := c.GetJSON(ctx, "/api/public/batches/"+url.PathEscape(id))
	if err != nil {
		return models.BatchDetailView{}, err
	}
	return normalize.BatchDetail(payload), nil
}

// Categories fetches the category list used for routing and the filter bar.
func (c *Client) Categories(ctx context.Context) ([]models.Category, error) {
	payload, err := c.GetJSON(ctx, "/api/public/categories")
	if err != nil {
		return nil, err
	}
	return normalize.Categories(payload), nil
}

// CategoryBySlug resolves one category from the list endpoint.
func (c *Client) CategoryBySlug(ctx context.Context, slug string) (models.Category, bool, error) {
	categories, err := c.Categories(ctx)
	if err != nil {
		return models.Category{}, false, err
	}
	for _, category := range categories {
		if category.Slug == slug {
			return category, true, nil
		}
	}
	return models.Category{}, false, nil
}

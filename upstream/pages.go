package upstream

import (
	"context"
	"net/url"

	"chayuan/models"
	"chayuan/normalize"
)

// GrowthData fetches one month of growth records. iconMap is the cached
// weather-template map; pass an empty map to resolve icons from presets only.
func (c *Client) GrowthData(ctx context.Context, month string, iconMap map[string]string) (models.GrowthData, error) {
	payload, err := c.GetJSON(ctx, "/api/public/growth-data?month="+url.QueryEscape(month))
	if err != nil {
		return models.GrowthData{}, err
	}
	return normalize.GrowthData(payload, month, iconMap), nil
}

// LandingPage fetches and normalizes the home-page payload.
func (c *Client) LandingPage(ctx context.Context) (models.LandingPage, error) {
	payload, err := c.GetJSON(ctx, "/api/public/landing-page")
	if err != nil {
		return models.LandingPage{}, err
	}
	return normalize.LandingPage(payload), nil
}

// AdoptionPlans fetches and normalizes the sales-funnel payload.
func (c *Client) AdoptionPlans(ctx context.Context) (models.AdoptionPlans, error) {
	payload, err := c.GetJSON(ctx, "/api/public/adoption-plans")
	if err != nil {
		return models.AdoptionPlans{}, err
	}
	return normalize.AdoptionPlans(payload), nil
}

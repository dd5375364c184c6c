package normalize

import (
	"chayuan/models"
)

// yieldKeys and pickingKeys are the candidate field spellings the backend
// has used for the landing category stats, newest first.
var yieldKeys = []string{
	"yield_percentage", "yieldPercentage",
	"yield_percent", "yieldPercent",
	"yield_ratio", "yieldRatio",
	"yield_rate", "yieldRate",
	"percentage", "share", "ratio",
}

var pickingKeys = []string{
	"picking_period", "pickingPeriod",
	"harvest_period", "harvestPeriod",
	"harvest_window", "harvestWindow",
	"harvest_timeframe", "harvestTimeframe",
	"harvest_dates", "harvestDates",
	"picking_window", "pickingWindow",
}

// Categories normalizes the category-list endpoint payload into routing
// entries. The endpoint returns a bare array; a {data: [...]} wrapper is
// tolerated anyway.
func Categories(payload any) []models.Category {
	items := asSlice(payload)
	if items == nil {
		items = asSlice(asMap(payload)["data"])
	}
	out := make([]models.Category, 0, len(items))
	for _, item := range items {
		raw := asMap(item)
		if raw == nil {
			continue
		}
		name := strField(raw, "name")
		slug := strField(raw, "slug")
		if name == "" && slug == "" {
			continue
		}
		count, _ := numField(raw, "count")
		out = append(out, models.Category{Name: name, Slug: slug, Count: int(count)})
	}
	return out
}

// LandingCategory maps one tea-category card, digging the yield share and
// picking period out of whichever stats/schedule sub-object this backend
// version nested them in.
func LandingCategory(raw map[string]any) models.LandingCategoryView {
	statsSource := asMap(ResolveFromSources([]map[string]any{raw}, []string{"stats", "statistics", "metrics"}))
	scheduleSource := asMap(ResolveFromSources([]map[string]any{raw},
		[]string{"schedule", "harvest_schedule", "harvestSchedule", "timeline", "season"}))

	name := strField(raw, "name", "title")
	if name == "" {
		name = "未知品类"
	}

	view := models.LandingCategoryView{
		Name:          name,
		ImageURL:      strField(raw, "image_url", "imageUrl"),
		Description:   strField(raw, "description", "desc", "summary"),
		PickingPeriod: "待更新",
	}

	if pct, ok := ParsePercentage(ResolveFromSources([]map[string]any{raw, statsSource}, yieldKeys)); ok {
		view.YieldPercentage = pct
	}
	if period, ok := StringifyPickingPeriod(ResolveFromSources([]map[string]any{raw, scheduleSource}, pickingKeys)); ok && period != "" {
		view.PickingPeriod = period
	}
	return view
}

// LandingPage normalizes the home-page payload: plot hero section, category
// cards and footer.
func LandingPage(payload any) models.LandingPage {
	raw := asMap(payload)
	if raw == nil {
		raw = map[string]any{}
	}

	page := models.LandingPage{Categories: []models.LandingCategoryView{}}

	if plot := asMap(raw["plot"]); plot != nil {
		name := strField(plot, "name", "plot_name", "plotName")
		if name == "" {
			name = "未知地块"
		}
		page.Plot = &models.PlotView{
			Name:           name,
			CarouselImages: carouselImages(plot),
			InfoList:       infoList(plot),
			ValueSummary:   strField(plot, "value_summary", "valueSummary", "summary"),
		}
	}

	for _, item := range asSlice(raw["categories"]) {
		if category := asMap(item); category != nil {
			page.Categories = append(page.Categories, LandingCategory(category))
		}
	}

	if footer := asMap(raw["footer"]); footer != nil {
		page.Footer = &models.FooterView{LogoURL: strField(footer, "logoUrl", "logo_url", "logo")}
	}

	return page
}

func carouselImages(plot map[string]any) []string {
	for _, key := range []string{"carousel_images", "carouselImages", "images"} {
		if urls := rawStringSlice(plot[key]); len(urls) > 0 {
			return urls
		}
	}
	return []string{}
}

func infoList(plot map[string]any) []models.InfoItem {
	items := mapSlice(ResolveFromSources([]map[string]any{plot}, []string{"info_list", "infoList", "info"}))
	out := make([]models.InfoItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.InfoItem{
			Icon:    strField(item, "icon"),
			Label:   ToDisplayText(item["label"], ""),
			Value:   ToDisplayText(item["value"], ""),
			SubText: strField(item, "sub_text", "subText"),
		})
	}
	return out
}

package models

// InfoItem is one labeled fact about the plot (altitude, soil, area, ...).
type InfoItem struct {
	Icon    string `json:"icon,omitempty"`
	Label   string `json:"label"`
	Value   string `json:"value"`
	SubText string `json:"subText,omitempty"`
}

// PlotView is the hero plot section of the landing page.
type PlotView struct {
	Name           string     `json:"name"`
	CarouselImages []string   `json:"carouselImages"`
	InfoList       []InfoItem `json:"infoList"`
	ValueSummary   string     `json:"valueSummary,omitempty"`
}

// LandingCategoryView is one tea-category card on the landing page.
type LandingCategoryView struct {
	Name            string  `json:"name"`
	ImageURL        string  `json:"imageUrl,omitempty"`
	Description     string  `json:"description,omitempty"`
	YieldPercentage float64 `json:"yieldPercentage"`
	PickingPeriod   string  `json:"pickingPeriod"`
}

// FooterView carries the landing page footer content.
type FooterView struct {
	LogoURL string `json:"logoUrl,omitempty"`
}

// LandingPage is the normalized payload for the home page.
type LandingPage struct {
	Plot       *PlotView             `json:"plot,omitempty"`
	Categories []LandingCategoryView `json:"categories"`
	Footer     *FooterView           `json:"footer,omitempty"`
}

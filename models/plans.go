package models

// MarketingHeader is the headline block of a sales-funnel plan.
type MarketingHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// CustomerCase is one testimonial in a plan's case carousel.
type CustomerCase struct {
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// ScenarioApplication is one use-case card with its pain point and solution.
type ScenarioApplication struct {
	Title           string   `json:"title"`
	Icon            string   `json:"icon,omitempty"`
	PainPoint       string   `json:"painPoint,omitempty"`
	Solution        string   `json:"solution,omitempty"`
	BackgroundImage string   `json:"backgroundImage,omitempty"`
	CoreValues      []string `json:"coreValues"`
	Content         string   `json:"content,omitempty"`
}

// ComparisonFeature is one row of the package comparison table.
type ComparisonFeature struct {
	Icon        string   `json:"icon,omitempty"`
	FeatureName string   `json:"featureName"`
	Values      []string `json:"values"`
}

// PrivatePlanView is the personal adoption plan.
type PrivatePlanView struct {
	MarketingHeader        MarketingHeader       `json:"marketingHeader"`
	ValuePropositions      []string              `json:"valuePropositions"`
	CustomerCases          []CustomerCase        `json:"customerCases"`
	ScenarioApplications   []ScenarioApplication `json:"scenarioApplications"`
	Packages               []map[string]any      `json:"packages"`
	ProcessSteps           []map[string]any      `json:"processSteps"`
	ComparisonPackageNames []string              `json:"comparisonPackageNames"`
	ComparisonFeatures     []ComparisonFeature   `json:"comparisonFeatures"`
}

// EnterprisePlanView is the corporate adoption plan.
type EnterprisePlanView struct {
	MarketingHeader      MarketingHeader       `json:"marketingHeader"`
	CustomerCases        []CustomerCase        `json:"customerCases"`
	UseScenarios         []ScenarioApplication `json:"useScenarios"`
	ScenarioApplications []ScenarioApplication `json:"scenarioApplications"`
	ServiceContents      []map[string]any      `json:"serviceContents"`
	ProcessSteps         []map[string]any      `json:"processSteps"`
}

// B2BPlanView is the cooperation plan, a single pitch paragraph today.
type B2BPlanView struct {
	Description string `json:"description"`
}

// AdoptionPlans is the normalized sales-funnel payload. A plan absent from
// the backend response stays nil rather than failing the whole page.
type AdoptionPlans struct {
	Private    *PrivatePlanView    `json:"private,omitempty"`
	Enterprise *EnterprisePlanView `json:"enterprise,omitempty"`
	B2B        *B2BPlanView        `json:"b2b,omitempty"`
}

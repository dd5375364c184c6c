package normalize

import (
	"regexp"
	"strings"

	"chayuan/models"
)

var base64Re = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// NormalizeImageSource accepts the several ways the back office has stored
// plan imagery: absolute/relative URLs, data URIs, or a bare base64 blob
// that needs the data-URI prefix restored.
func NormalizeImageSource(value any) string {
	s, ok := value.(string)
	if !ok {
		return ""
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}
	if strings.HasPrefix(trimmed, "data:") ||
		strings.HasPrefix(trimmed, "http://") ||
		strings.HasPrefix(trimmed, "https://") ||
		strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	if len(trimmed) > 40 && base64Re.MatchString(trimmed) {
		return "data:image/png;base64," + trimmed
	}
	return trimmed
}

// AdoptionPlans normalizes the sales-funnel payload. Each top-level plan has
// two historical key spellings; a missing plan stays nil rather than failing
// the page.
func AdoptionPlans(payload any) models.AdoptionPlans {
	root := asMap(payload)
	data := asMap(root["data"])
	if data == nil {
		data = root
	}
	if data == nil {
		data = map[string]any{}
	}

	var plans models.AdoptionPlans
	if raw := asMap(ResolveFromSources([]map[string]any{data}, []string{"private", "personal"})); raw != nil {
		plans.Private = privatePlan(raw)
	}
	if raw := asMap(ResolveFromSources([]map[string]any{data}, []string{"enterprise", "corporate"})); raw != nil {
		plans.Enterprise = enterprisePlan(raw)
	}
	if raw := asMap(ResolveFromSources([]map[string]any{data}, []string{"b2b", "cooperation"})); raw != nil {
		plans.B2B = &models.B2BPlanView{Description: ToDisplayText(raw["description"], "")}
	}
	return plans
}

func privatePlan(raw map[string]any) *models.PrivatePlanView {
	return &models.PrivatePlanView{
		MarketingHeader:        marketingHeader(raw),
		ValuePropositions:      stringSlice(ResolveFromSources([]map[string]any{raw}, []string{"value_propositions", "valuePropositions"})),
		CustomerCases:          customerCases(raw),
		ScenarioApplications:   scenarioApplications(ResolveFromSources([]map[string]any{raw}, []string{"scenario_applications", "scenarioApplications"})),
		Packages:               mapSlice(raw["packages"]),
		ProcessSteps:           mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"process_steps", "processSteps"})),
		ComparisonPackageNames: stringSlice(ResolveFromSources([]map[string]any{raw}, []string{"comparison_package_names", "comparisonPackageNames"})),
		ComparisonFeatures:     comparisonFeatures(raw),
	}
}

func enterprisePlan(raw map[string]any) *models.EnterprisePlanView {
	return &models.EnterprisePlanView{
		MarketingHeader: marketingHeader(raw),
		CustomerCases:   customerCases(raw),
		UseScenarios: scenarioApplications(ResolveFromSources([]map[string]any{raw},
			[]string{"use_scenarios", "useScenarios", "scenario_applications", "scenarioApplications"})),
		ScenarioApplications: scenarioApplications(ResolveFromSources([]map[string]any{raw},
			[]string{"scenario_applications", "scenarioApplications"})),
		ServiceContents: mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"service_contents", "serviceContents"})),
		ProcessSteps:    mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"process_steps", "processSteps"})),
	}
}

func marketingHeader(raw map[string]any) models.MarketingHeader {
	header := asMap(ResolveFromSources([]map[string]any{raw}, []string{"marketing_header", "marketingHeader"}))
	if header == nil {
		return models.MarketingHeader{}
	}
	return models.MarketingHeader{
		Title:    ToDisplayText(header["title"], ""),
		Subtitle: ToDisplayText(header["subtitle"], ""),
	}
}

func customerCases(raw map[string]any) []models.CustomerCase {
	items := mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"customer_cases", "customerCases"}))
	out := make([]models.CustomerCase, 0, len(items))
	for _, item := range items {
		out = append(out, models.CustomerCase{
			Text:     ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"text", "quote"}), ""),
			ImageURL: NormalizeImageSource(ResolveFromSources([]map[string]any{item}, []string{"image_url", "logo", "imageUrl"})),
		})
	}
	return out
}

func scenarioApplications(value any) []models.ScenarioApplication {
	items := mapSlice(value)
	out := make([]models.ScenarioApplication, 0, len(items))
	for _, item := range items {
		out = append(out, models.ScenarioApplication{
			Title:           ToDisplayText(item["title"], ""),
			Icon:            strField(item, "icon"),
			PainPoint:       ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"pain_point", "painPoint"}), ""),
			Solution:        ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"solution", "description"}), ""),
			BackgroundImage: strField(item, "background_image", "backgroundImage", "imageUrl"),
			CoreValues:      stringSlice(ResolveFromSources([]map[string]any{item}, []string{"core_values", "coreValues"})),
			Content:         ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"content", "description"}), ""),
		})
	}
	return out
}

func comparisonFeatures(raw map[string]any) []models.ComparisonFeature {
	items := mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"comparison_features", "comparisonFeatures"}))
	out := make([]models.ComparisonFeature, 0, len(items))
	for _, item := range items {
		out = append(out, models.ComparisonFeature{
			Icon:        strField(item, "icon", "emoji"),
			FeatureName: ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"feature_name", "featureName"}), ""),
			Values:      stringSlice(item["values"]),
		})
	}
	return out
}

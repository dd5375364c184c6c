package normalize

import (
	"chayuan/models"
)

// GrowthData maps the growth-data endpoint payload: the month's daily logs
// and, when the backend produced one, the monthly rollup. Both sections have
// snake_case and camelCase spellings in the wild.
func GrowthData(payload any, month string, iconMap map[string]string) models.GrowthData {
	raw := asMap(payload)
	if inner := asMap(raw["data"]); inner != nil {
		raw = inner
	}
	if raw == nil {
		raw = map[string]any{}
	}

	out := models.GrowthData{
		Month:     month,
		DailyLogs: []models.DailyLogView{},
	}

	logs := mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"daily_logs", "dailyLogs"}))
	for _, log := range logs {
		out.DailyLogs = append(out.DailyLogs, DailyLog(log, iconMap))
	}

	if summary := asMap(ResolveFromSources([]map[string]any{raw}, []string{"monthly_summary", "monthlySummary"})); summary != nil {
		view := MonthlySummary(summary)
		out.MonthlySummary = &view
	}

	return out
}

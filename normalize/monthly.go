package normalize

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"chayuan/models"
)

var monthNames = []string{"一", "二", "三", "四", "五", "六", "七", "八", "九", "十", "十一", "十二"}

// calendarDateRe matches the date tokens inside a free-text farm calendar,
// e.g. 9/1日 or 9月2号. The activity is whatever sits between two tokens.
var calendarDateRe = regexp.MustCompile(`\d+[/月]\d+[日号]`)

var planSplitRe = regexp.MustCompile(`[;；\n]`)

// MonthlySummary maps a raw monthly rollup, old or new shape, to its view
// model.
func MonthlySummary(raw map[string]any) models.MonthlySummaryView {
	yearMonth := strField(raw, "year_month", "yearMonth", "month")

	view := models.MonthlySummaryView{
		YearMonth:       yearMonth,
		Title:           monthTitle(yearMonth),
		VideoURL:        strField(raw, "video_url", "videoUrl"),
		VideoThumbnail:  strField(raw, "video_thumbnail", "videoThumbnail"),
		Gallery:         gallery(raw),
		HarvestStats:    harvestStats(raw),
		AbnormalRecords: abnormalRecords(raw),
		Climate:         climate(raw),
		FarmCalendar:    farmCalendar(raw),
		NextMonthPlan:   nextMonthPlan(raw),
		TeaMaster:       TeaMasterFrom(ResolveFromSources([]map[string]any{raw}, []string{"tea_master", "teaMaster"})),
	}
	return view
}

// monthTitle renders 2024-08 as 八月汇总记录.
func monthTitle(yearMonth string) string {
	const fallback = "月度汇总记录"
	parts := strings.SplitN(yearMonth, "-", 2)
	if len(parts) != 2 {
		return fallback
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return fallback
	}
	return monthNames[month-1] + "月汇总记录"
}

func gallery(raw map[string]any) []string {
	for _, key := range []string{"detail_gallery", "detailGallery", "images"} {
		if urls := rawStringSlice(raw[key]); len(urls) > 0 {
			return urls
		}
	}
	return []string{}
}

func harvestStats(raw map[string]any) models.HarvestStats {
	for _, key := range []string{"harvest_stats", "harvestStats"} {
		if obj := asMap(raw[key]); obj != nil {
			count, _ := numField(obj, "count")
			weight, _ := numField(obj, "total_weight", "totalWeight", "total_weight_kg", "totalWeightKg")
			return models.HarvestStats{Count: int(count), TotalWeightKg: weight}
		}
	}
	count, _ := numField(raw, "harvest_count", "harvestCount")
	weight, _ := numField(raw, "total_harvest_weight", "totalHarvestWeight")
	return models.HarvestStats{Count: int(count), TotalWeightKg: weight}
}

func abnormalRecords(raw map[string]any) []models.AbnormalRecord {
	var items []map[string]any
	for _, key := range []string{"abnormal_summary", "abnormalSummary", "abnormal_records", "abnormalRecords"} {
		if found := mapSlice(raw[key]); len(found) > 0 {
			items = found
			break
		}
	}
	out := make([]models.AbnormalRecord, 0, len(items))
	for _, item := range items {
		out = append(out, models.AbnormalRecord{
			Date:     strField(item, "date"),
			Issue:    ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"issue", "description"}), ""),
			Measures: ToDisplayText(ResolveFromSources([]map[string]any{item}, []string{"measures", "solution"}), ""),
		})
	}
	return out
}

// climate reads aggregated figures from climate_summary (newest field names
// first), then the legacy top-level fields. When the backend supplied only
// raw per-day readings, the aggregates are computed here instead.
func climate(raw map[string]any) models.Climate {
	for _, key := range []string{"climate_summary", "climateSummary"} {
		if obj := asMap(raw[key]); obj != nil {
			avg, _ := numField(obj, "avg_temp", "avgTemp", "avg_temperature", "avgTemperature")
			rain, _ := numField(obj, "total_precipitation", "totalPrecipitation", "total_rainfall", "totalRainfall")
			return models.Climate{AvgTemperature: avg, TotalRainfall: rain}
		}
	}
	avg, avgOK := numField(raw, "avg_temperature", "avgTemperature")
	rain, rainOK := numField(raw, "total_rainfall", "totalRainfall")
	if avgOK || rainOK {
		return models.Climate{AvgTemperature: avg, TotalRainfall: rain}
	}
	return climateFromReadings(raw)
}

func climateFromReadings(raw map[string]any) models.Climate {
	readings := mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"climate_readings", "climateReadings", "daily_climate", "dailyClimate"}))
	if len(readings) == 0 {
		return models.Climate{}
	}
	var temps, rains []float64
	for _, reading := range readings {
		if t, ok := numField(reading, "temperature", "avg_temperature", "avgTemperature"); ok {
			temps = append(temps, t)
		}
		if r, ok := numField(reading, "rainfall", "precipitation"); ok {
			rains = append(rains, r)
		}
	}
	var out models.Climate
	if len(temps) > 0 {
		if mean, err := stats.Mean(temps); err == nil {
			if rounded, err := stats.Round(mean, 1); err == nil {
				out.AvgTemperature = rounded
			}
		}
	}
	if len(rains) > 0 {
		if sum, err := stats.Sum(rains); err == nil {
			if rounded, err := stats.Round(sum, 1); err == nil {
				out.TotalRainfall = rounded
			}
		}
	}
	return out
}

// farmCalendar accepts either a structured array or the legacy free-text
// form "9/1日 采摘 9/2日 施肥".
func farmCalendar(raw map[string]any) []models.CalendarEntry {
	value := ResolveFromSources([]map[string]any{raw}, []string{"farm_calendar", "farmCalendar"})

	if items := mapSlice(value); len(items) > 0 {
		out := make([]models.CalendarEntry, 0, len(items))
		for _, item := range items {
			out = append(out, models.CalendarEntry{
				Date:     strField(item, "date"),
				Activity: ToDisplayText(item["activity"], ""),
			})
		}
		return out
	}

	if text, ok := value.(string); ok {
		return parseCalendarText(text)
	}
	return []models.CalendarEntry{}
}

func parseCalendarText(text string) []models.CalendarEntry {
	text = strings.TrimSpace(text)
	out := []models.CalendarEntry{}
	if text == "" {
		return out
	}
	locs := calendarDateRe.FindAllStringIndex(text, -1)
	for i, loc := range locs {
		date := text[loc[0]:loc[1]]
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		activity := strings.TrimSpace(text[loc[1]:end])
		if date != "" && activity != "" {
			out = append(out, models.CalendarEntry{Date: date, Activity: activity})
		}
	}
	return out
}

// nextMonthPlan accepts an array of plan items or a single string split on
// semicolons and newlines.
func nextMonthPlan(raw map[string]any) []string {
	value := ResolveFromSources([]map[string]any{raw}, []string{"next_month_plan", "nextMonthPlan"})
	if items := asSlice(value); items != nil {
		return stringSlice(items)
	}
	if text, ok := value.(string); ok {
		out := []string{}
		for _, part := range planSplitRe.Split(text, -1) {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return []string{}
}

// TeaMasterFrom normalizes a tea-master object across its several key
// spellings. Returns nil when the value is not an object or carries no name.
func TeaMasterFrom(value any) *models.TeaMaster {
	obj := asMap(value)
	if obj == nil {
		return nil
	}
	name := strings.TrimSpace(ToDisplayText(
		ResolveFromSources([]map[string]any{obj}, []string{"name", "full_name", "fullName", "display_name", "displayName", "title"}), ""))
	if name == "" {
		name = "未知"
	}
	master := models.TeaMaster{
		Name:      name,
		Role:      strField(obj, "title", "role", "position"),
		AvatarURL: avatarURL(obj),
	}
	if years, ok := numField(obj, "experienceYears", "experience_years", "years_of_experience", "yearsOfExperience"); ok {
		master.ExperienceYears = int(years)
	}
	return &master
}

func avatarURL(obj map[string]any) string {
	if url := strField(obj,
		"avatar_url", "avatarUrl", "avatar",
		"profile_image_url", "profileImageUrl",
		"image_url", "imageUrl"); url != "" {
		return url
	}
	return FindURLByKeyPatterns(obj, []string{"avatar", "profile", "image"})
}

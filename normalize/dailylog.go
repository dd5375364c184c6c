package normalize

import (
	"fmt"
	"strings"
	"time"

	"chayuan/models"
)

var videoExtensions = []string{".mp4", ".webm", ".ogg", ".mov"}

// IsVideoURL reports whether a media URL points at a video, by extension.
func IsVideoURL(url string) bool {
	lower := strings.ToLower(url)
	for _, ext := range videoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// activityTags maps farm-activity keywords to their badge colors. Checked in
// order; free text like 今日施肥两次 matches by substring.
var activityTags = []models.StatusTag{
	{Text: "施肥", Color: "#22C55E"},
	{Text: "修剪", Color: "#3B82F6"},
	{Text: "灌溉", Color: "#06B6D4"},
	{Text: "采摘", Color: "#F59E0B"},
}

var genericActivityTag = models.StatusTag{Text: "农事", Color: "#22C55E"}
var abnormalTag = models.StatusTag{Text: "异常", Color: "#EF4444"}

// DailyLog maps one raw daily-log object, in any of the three historical API
// shapes, to its view model. iconMap is the backend weather-template map; an
// empty map simply disables that resolution tier.
func DailyLog(raw map[string]any, iconMap map[string]string) models.DailyLogView {
	date := strField(raw, "date")

	mediaURL := firstMediaURL(raw,
		[]string{"main_image_url", "mainImageUrl"},
		[]string{"media_urls", "mediaUrls", "images_and_videos", "imagesAndVideos", "images"},
	)

	view := models.DailyLogView{
		Date:                    date,
		DateLabel:               dateLabel(date),
		MainMediaURL:            mediaURL,
		MainMediaIsVideo:        mediaURL != "" && IsVideoURL(mediaURL),
		Weather:                 WeatherIcon(raw, iconMap),
		TemperatureRange:        TemperatureRange(raw),
		PlotName:                plotName(raw),
		Recorder:                recorder(raw),
		StatusTag:               statusTag(raw),
		Summary:                 ToDisplayText(raw["summary"], ""),
		FullLog:                 ToDisplayText(ResolveFromSources([]map[string]any{raw}, []string{"full_description", "fullDescription", "full_log", "fullLog"}), ""),
		PhenologicalObservation: ToDisplayText(ResolveFromSources([]map[string]any{raw}, []string{"phenological_observation", "phenologicalObservation"}), ""),
		AbnormalEvent:           abnormalEvent(raw),
		Harvest:                 dailyHarvest(raw),
	}

	if activity := strField(raw, "farm_activities", "farmActivities"); activity != "" {
		view.FarmActivity = &models.FarmActivity{
			Type: activityKeyword(activity),
			Log:  activity,
		}
	}

	return view
}

func dateLabel(date string) string {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, date); err == nil {
			return fmt.Sprintf("%d月%d日", int(t.Month()), t.Day())
		}
	}
	return ""
}

// plotName tries, newest shape first: photo location, populated plot object,
// plain plot name fields.
func plotName(raw map[string]any) string {
	photoInfo := asMap(raw["photo_info"])
	photoInfoCamel := asMap(raw["photoInfo"])
	for _, m := range []map[string]any{photoInfo, photoInfoCamel} {
		if m == nil {
			continue
		}
		if s := strField(m, "location", "plot_name", "plotName"); s != "" {
			return s
		}
	}
	for _, key := range []string{"plot_id", "plotId", "plot_info", "plotInfo"} {
		if m := asMap(raw[key]); m != nil {
			if s := strField(m, "name"); s != "" {
				return s
			}
		}
	}
	if s := strField(raw, "plotName", "plot_name"); s != "" {
		return s
	}
	return "未知地块"
}

func recorder(raw map[string]any) models.Recorder {
	flatName := strField(raw, "recorder_name", "recorderName")

	// Newest shape: a populated recorder object with camelCase avatar.
	if obj := asMap(raw["recorder"]); obj != nil {
		name := strField(obj, "name")
		if name == "" {
			name = flatName
		}
		if name == "" {
			name = "未知"
		}
		return models.Recorder{Name: name, AvatarURL: strField(obj, "avatarUrl", "avatar_url")}
	}

	for _, key := range []string{"recorder_id", "recorderId"} {
		if obj := asMap(raw[key]); obj != nil {
			name := strField(obj, "name")
			if name == "" {
				name = flatName
			}
			if name == "" {
				name = "未知"
			}
			return models.Recorder{Name: name, AvatarURL: strField(obj, "avatarUrl", "avatar_url")}
		}
	}

	name := flatName
	if name == "" {
		if s, ok := raw["recorder"].(string); ok {
			name = strings.TrimSpace(s)
		}
	}
	if name == "" {
		name = "未知"
	}
	return models.Recorder{Name: name}
}

// statusTag prefers an explicit backend tag, then derives one from the
// abnormal flag or the farm-activity keywords.
func statusTag(raw map[string]any) *models.StatusTag {
	for _, key := range []string{"status_tag", "statusTag"} {
		if tag := asMap(raw[key]); tag != nil {
			if text := strField(tag, "text"); text != "" {
				color := strField(tag, "color")
				if color == "" {
					color = "#8A2BE2"
				}
				return &models.StatusTag{Text: text, Color: color}
			}
		}
	}

	if boolField(raw, "is_abnormal", "isAbnormal") {
		tag := abnormalTag
		return &tag
	}

	if activity := strField(raw, "farm_activities", "farmActivities"); activity != "" {
		for _, candidate := range activityTags {
			if strings.Contains(activity, candidate.Text) {
				tag := candidate
				return &tag
			}
		}
		tag := genericActivityTag
		return &tag
	}

	return nil
}

func activityKeyword(activity string) string {
	for _, candidate := range activityTags {
		if strings.Contains(activity, candidate.Text) {
			return candidate.Text
		}
	}
	return genericActivityTag.Text
}

// abnormalEvent returns nil, never an all-empty struct, when nothing
// abnormal happened. A populated structured abnormal_event wins over the
// legacy is_abnormal flag with its separate description/solution fields;
// an all-empty structured object falls through to the legacy check.
func abnormalEvent(raw map[string]any) *models.AbnormalEvent {
	for _, key := range []string{"abnormal_event", "abnormalEvent"} {
		if obj := asMap(raw[key]); obj != nil {
			event := models.AbnormalEvent{
				Title:       strField(obj, "title"),
				Description: strField(obj, "description"),
				Measures:    strField(obj, "measures_taken", "measuresTaken", "solution"),
			}
			if event.Title != "" || event.Description != "" || event.Measures != "" {
				return &event
			}
		}
	}

	if boolField(raw, "is_abnormal", "isAbnormal") {
		desc := strField(raw, "abnormal_description", "abnormalDescription")
		if desc == "" {
			return nil
		}
		return &models.AbnormalEvent{
			Description: desc,
			Measures:    strField(raw, "abnormal_solution", "abnormalSolution"),
		}
	}

	return nil
}

func dailyHarvest(raw map[string]any) *models.DailyHarvest {
	if !boolField(raw, "has_harvest", "hasHarvest") {
		return nil
	}
	count, ok := numField(raw, "harvest_count", "harvestCount")
	if !ok {
		count = 1
	}
	weight, _ := numField(raw, "harvest_total_weight", "harvestTotalWeight")
	team, _ := numField(raw, "harvest_team_count", "harvestTeamCount")
	return &models.DailyHarvest{
		Count:           int(count),
		TotalWeightKg:   weight,
		LeaderName:      strField(raw, "harvest_leader_name", "harvestLeaderName"),
		LeaderAvatarURL: strField(raw, "harvest_leader_avatar", "harvestLeaderAvatar"),
		TeamCount:       int(team),
	}
}

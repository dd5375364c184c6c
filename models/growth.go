package models

// WeatherIconKind discriminates the three possible weather icon representations.
type WeatherIconKind string

const (
	WeatherIconURL          WeatherIconKind = "url"           // backend-hosted SVG
	WeatherIconComponentKey WeatherIconKind = "component-key" // preset icon shipped with the frontend
	WeatherIconEmoji        WeatherIconKind = "emoji"
)

// WeatherIcon is a tagged union. Exactly one of URL/Name/Glyph is set,
// according to Kind.
type WeatherIcon struct {
	Kind  WeatherIconKind `json:"kind"`
	URL   string          `json:"url,omitempty"`
	Name  string          `json:"name,omitempty"`
	Glyph string          `json:"glyph,omitempty"`
}

// Recorder identifies who wrote a daily log.
type Recorder struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// StatusTag is the colored badge shown on a daily log card.
type StatusTag struct {
	Text  string `json:"text"`
	Color string `json:"color"` // hex
}

// FarmActivity is a keyword-classified free-text activity entry.
type FarmActivity struct {
	Type string `json:"type"` // matched keyword, or 农事 when none matched
	Log  string `json:"log"`
}

// AbnormalEvent describes a problem observed in the garden and how it was handled.
// Adapters return nil (never an all-empty struct) when nothing abnormal happened.
type AbnormalEvent struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Measures    string `json:"measures,omitempty"`
}

// DailyHarvest summarizes picking activity attached to a single daily log.
type DailyHarvest struct {
	Count           int     `json:"count"`
	TotalWeightKg   float64 `json:"totalWeightKg"`
	LeaderName      string  `json:"leaderName,omitempty"`
	LeaderAvatarURL string  `json:"leaderAvatarUrl,omitempty"`
	TeamCount       int     `json:"teamCount,omitempty"`
}

// DailyLogView is the normalized daily growth record served to the frontend.
// Every field the UI renders is a defined primitive; raw backend objects never
// pass through.
type DailyLogView struct {
	Date                    string         `json:"date"` // YYYY-MM-DD
	DateLabel               string         `json:"dateLabel,omitempty"`
	MainMediaURL            string         `json:"mainMediaUrl,omitempty"`
	MainMediaIsVideo        bool           `json:"mainMediaIsVideo,omitempty"`
	Weather                 WeatherIcon    `json:"weather"`
	TemperatureRange        string         `json:"temperatureRange"`
	PlotName                string         `json:"plotName"`
	Recorder                Recorder       `json:"recorder"`
	StatusTag               *StatusTag     `json:"statusTag,omitempty"`
	Summary                 string         `json:"summary,omitempty"`
	FullLog                 string         `json:"fullLog,omitempty"`
	FarmActivity            *FarmActivity  `json:"farmActivity,omitempty"`
	PhenologicalObservation string         `json:"phenologicalObservation,omitempty"`
	AbnormalEvent           *AbnormalEvent `json:"abnormalEvent,omitempty"`
	Harvest                 *DailyHarvest  `json:"harvest,omitempty"`
}

// HarvestStats aggregates picking activity over a month.
type HarvestStats struct {
	Count         int     `json:"count"`
	TotalWeightKg float64 `json:"totalWeightKg"`
}

// AbnormalRecord is one dated entry in the monthly abnormal-handling table.
type AbnormalRecord struct {
	Date     string `json:"date"`
	Issue    string `json:"issue"`
	Measures string `json:"measures"`
}

// Climate carries the month's aggregated weather figures.
type Climate struct {
	AvgTemperature float64 `json:"avgTemperature"`
	TotalRainfall  float64 `json:"totalRainfall"`
}

// CalendarEntry is one day's activity in the farm calendar.
type CalendarEntry struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
}

// TeaMaster identifies the master responsible for a month or batch.
type TeaMaster struct {
	Name            string `json:"name"`
	Role            string `json:"title,omitempty"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	ExperienceYears int    `json:"experienceYears,omitempty"`
}

// MonthlySummaryView is the normalized month-level rollup.
type MonthlySummaryView struct {
	YearMonth       string           `json:"yearMonth"`
	Title           string           `json:"title"` // e.g. 八月汇总记录
	VideoURL        string           `json:"videoUrl,omitempty"`
	VideoThumbnail  string           `json:"videoThumbnail,omitempty"`
	Gallery         []string         `json:"gallery"`
	HarvestStats    HarvestStats     `json:"harvestStats"`
	AbnormalRecords []AbnormalRecord `json:"abnormalRecords"`
	Climate         Climate          `json:"climate"`
	FarmCalendar    []CalendarEntry  `json:"farmCalendar"`
	NextMonthPlan   []string         `json:"nextMonthPlan"`
	TeaMaster       *TeaMaster       `json:"teaMaster,omitempty"`
}

// GrowthData is the payload of the growth-log page: the month's daily cards
// plus the monthly rollup, when the backend has produced one.
type GrowthData struct {
	Month          string              `json:"month"`
	DailyLogs      []DailyLogView      `json:"dailyLogs"`
	MonthlySummary *MonthlySummaryView `json:"monthlySummary,omitempty"`
}

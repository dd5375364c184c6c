package normalize

import (
	"strings"

	"chayuan/models"
)

// presetWeatherIconKeys lists the icon components the frontend ships, in the
// order substring matching must try them. The matched key doubles as the
// component key sent to the client.
var presetWeatherIconKeys = []string{
	"晴天", "多云", "阴天", "雨天",
	"多云转晴", "小雨", "中雨", "大雨", "白天有阵雨", "阵雨", "雷阵雨", "风", "热浪",
	"晴", "云", "阴", "雨",
}

var presetWeatherIcons = func() map[string]bool {
	m := make(map[string]bool, len(presetWeatherIconKeys))
	for _, key := range presetWeatherIconKeys {
		m[key] = true
	}
	return m
}()

const (
	defaultWeatherGlyph     = "🌤️"
	defaultWeatherComponent = "晴天"
)

// WeatherIcon resolves a daily log's weather field into an icon reference.
// The four tiers fire strictly in order, because differently-versioned
// backends can supply several of these fields at once and only the
// first-listed source may win:
//
//  1. backend-uploaded SVG URL (weather.svg_icon)
//  2. weather.icon looked up in the backend icon-name map
//  3. preset component, exact name match then substring match
//  4. legacy string weather mapped to an emoji, 🌤️ as the final default
func WeatherIcon(raw map[string]any, iconMap map[string]string) models.WeatherIcon {
	weather := raw["weather"]

	if obj := asMap(weather); obj != nil {
		if svg := strField(obj, "svg_icon", "svgIcon"); svg != "" {
			return models.WeatherIcon{Kind: models.WeatherIconURL, URL: svg}
		}
		if name := strField(obj, "icon"); name != "" {
			if url := iconMap[name]; url != "" {
				return models.WeatherIcon{Kind: models.WeatherIconURL, URL: url}
			}
			if presetWeatherIcons[name] {
				return models.WeatherIcon{Kind: models.WeatherIconComponentKey, Name: name}
			}
			for _, key := range presetWeatherIconKeys {
				if strings.Contains(name, key) {
					return models.WeatherIcon{Kind: models.WeatherIconComponentKey, Name: key}
				}
			}
			return models.WeatherIcon{Kind: models.WeatherIconComponentKey, Name: defaultWeatherComponent}
		}
	}

	if s, ok := weather.(string); ok {
		switch {
		case strings.Contains(s, "晴"):
			return models.WeatherIcon{Kind: models.WeatherIconEmoji, Glyph: "☀️"}
		case strings.Contains(s, "云"):
			return models.WeatherIcon{Kind: models.WeatherIconEmoji, Glyph: "☁️"}
		case strings.Contains(s, "雨"):
			return models.WeatherIcon{Kind: models.WeatherIconEmoji, Glyph: "🌧️"}
		case strings.Contains(s, "雪"):
			return models.WeatherIcon{Kind: models.WeatherIconEmoji, Glyph: "❄️"}
		}
	}

	return models.WeatherIcon{Kind: models.WeatherIconEmoji, Glyph: defaultWeatherGlyph}
}

// TemperatureRange prefers the range inside the structured weather object
// over the legacy flat field.
func TemperatureRange(raw map[string]any) string {
	if obj := asMap(raw["weather"]); obj != nil {
		if r := strField(obj, "temperature_range", "temperatureRange"); r != "" {
			return r
		}
	}
	if r := strField(raw, "temperature_range", "temperatureRange"); r != "" {
		return r
	}
	return "—"
}

// WeatherIconMap extracts the icon-name to SVG URL map from the
// weather-templates endpoint payload. The endpoint wraps its data as
// {success, data: {templates, iconMap}}; when iconMap is missing the map is
// rebuilt from the template list.
func WeatherIconMap(payload any) map[string]string {
	root := asMap(payload)
	data := asMap(root["data"])
	if data == nil {
		data = root
	}
	out := map[string]string{}
	for name, v := range asMap(data["iconMap"]) {
		if url, ok := v.(string); ok && url != "" {
			out[name] = url
		}
	}
	if len(out) > 0 {
		return out
	}
	for _, tpl := range mapSlice(data["templates"]) {
		name := strField(tpl, "name")
		svg := strField(tpl, "svg_icon", "svgIcon")
		if name != "" && svg != "" {
			out[name] = svg
		}
	}
	return out
}

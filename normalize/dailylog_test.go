package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chayuan/models"
)

func TestDailyLogMediaResolutionOrder(t *testing.T) {
	raw := map[string]any{
		"main_image_url": "http://x/main.jpg",
		"media_urls":     []any{"http://x/media.jpg"},
		"images":         []any{"http://x/legacy.jpg"},
	}
	view := DailyLog(raw, nil)
	assert.Equal(t, "http://x/main.jpg", view.MainMediaURL)
	assert.False(t, view.MainMediaIsVideo)

	// direct keys absent: first media array element wins over legacy images
	delete(raw, "main_image_url")
	view = DailyLog(raw, nil)
	assert.Equal(t, "http://x/media.jpg", view.MainMediaURL)

	delete(raw, "media_urls")
	view = DailyLog(raw, nil)
	assert.Equal(t, "http://x/legacy.jpg", view.MainMediaURL)

	view = DailyLog(map[string]any{}, nil)
	assert.Equal(t, "", view.MainMediaURL)
}

func TestIsVideoURL(t *testing.T) {
	assert.True(t, IsVideoURL("http://x/clip.mp4"))
	assert.True(t, IsVideoURL("http://x/CLIP.MOV"))
	assert.True(t, IsVideoURL("http://x/clip.webm"))
	assert.False(t, IsVideoURL("http://x/photo.jpg"))
}

func TestDailyLogPlotNameChain(t *testing.T) {
	raw := map[string]any{
		"photo_info": map[string]any{"location": "南坡三号"},
		"plot_id":    map[string]any{"name": "北坡一号"},
		"plot_name":  "老地块",
	}
	assert.Equal(t, "南坡三号", DailyLog(raw, nil).PlotName)

	delete(raw, "photo_info")
	assert.Equal(t, "北坡一号", DailyLog(raw, nil).PlotName)

	delete(raw, "plot_id")
	assert.Equal(t, "老地块", DailyLog(raw, nil).PlotName)

	assert.Equal(t, "未知地块", DailyLog(map[string]any{}, nil).PlotName)
}

func TestDailyLogRecorder(t *testing.T) {
	view := DailyLog(map[string]any{
		"recorder": map[string]any{"name": "老张", "avatarUrl": "http://x/zhang.jpg"},
	}, nil)
	assert.Equal(t, models.Recorder{Name: "老张", AvatarURL: "http://x/zhang.jpg"}, view.Recorder)

	// populated recorder_id object, snake_case avatar
	view = DailyLog(map[string]any{
		"recorder_id": map[string]any{"name": "小李", "avatar_url": "http://x/li.jpg"},
	}, nil)
	assert.Equal(t, models.Recorder{Name: "小李", AvatarURL: "http://x/li.jpg"}, view.Recorder)

	// legacy plain string, no avatar
	view = DailyLog(map[string]any{"recorder": "王师傅"}, nil)
	assert.Equal(t, models.Recorder{Name: "王师傅"}, view.Recorder)

	view = DailyLog(map[string]any{}, nil)
	assert.Equal(t, "未知", view.Recorder.Name)
}

func TestDailyLogStatusTag(t *testing.T) {
	// explicit tag wins, default color filled in
	view := DailyLog(map[string]any{
		"status_tag":      map[string]any{"text": "特供"},
		"is_abnormal":     true,
		"farm_activities": "施肥",
	}, nil)
	require.NotNil(t, view.StatusTag)
	assert.Equal(t, models.StatusTag{Text: "特供", Color: "#8A2BE2"}, *view.StatusTag)

	view = DailyLog(map[string]any{"is_abnormal": true}, nil)
	require.NotNil(t, view.StatusTag)
	assert.Equal(t, models.StatusTag{Text: "异常", Color: "#EF4444"}, *view.StatusTag)

	view = DailyLog(map[string]any{"farm_activities": "下午修剪东侧茶树"}, nil)
	require.NotNil(t, view.StatusTag)
	assert.Equal(t, models.StatusTag{Text: "修剪", Color: "#3B82F6"}, *view.StatusTag)

	// free text with no known keyword gets the generic tag
	view = DailyLog(map[string]any{"farm_activities": "巡园"}, nil)
	require.NotNil(t, view.StatusTag)
	assert.Equal(t, models.StatusTag{Text: "农事", Color: "#22C55E"}, *view.StatusTag)

	assert.Nil(t, DailyLog(map[string]any{}, nil).StatusTag)
}

func TestDailyLogFarmActivity(t *testing.T) {
	view := DailyLog(map[string]any{"farm_activities": "上午灌溉南坡"}, nil)
	require.NotNil(t, view.FarmActivity)
	assert.Equal(t, "灌溉", view.FarmActivity.Type)
	assert.Equal(t, "上午灌溉南坡", view.FarmActivity.Log)

	assert.Nil(t, DailyLog(map[string]any{}, nil).FarmActivity)
}

func TestAbnormalEventStructured(t *testing.T) {
	view := DailyLog(map[string]any{
		"abnormal_event": map[string]any{
			"title":          "虫害",
			"description":    "东侧发现茶小绿叶蝉",
			"measures_taken": "物理诱捕",
		},
	}, nil)
	require.NotNil(t, view.AbnormalEvent)
	assert.Equal(t, "虫害", view.AbnormalEvent.Title)
	assert.Equal(t, "物理诱捕", view.AbnormalEvent.Measures)

	// measures falls back to the legacy solution key
	view = DailyLog(map[string]any{
		"abnormal_event": map[string]any{"description": "霜冻", "solution": "覆膜"},
	}, nil)
	require.NotNil(t, view.AbnormalEvent)
	assert.Equal(t, "覆膜", view.AbnormalEvent.Measures)
}

func TestAbnormalEventAllEmptyIsNil(t *testing.T) {
	view := DailyLog(map[string]any{
		"abnormal_event": map[string]any{"title": "", "description": "", "measures_taken": ""},
	}, nil)
	assert.Nil(t, view.AbnormalEvent)

	assert.Nil(t, DailyLog(map[string]any{"is_abnormal": false}, nil).AbnormalEvent)

	// legacy flag without a description is also nothing to show
	assert.Nil(t, DailyLog(map[string]any{"is_abnormal": true}, nil).AbnormalEvent)
}

func TestAbnormalEventEmptyStructuredFallsBackToLegacy(t *testing.T) {
	view := DailyLog(map[string]any{
		"abnormal_event":       map[string]any{"title": "", "description": "", "measures_taken": ""},
		"is_abnormal":          true,
		"abnormal_description": "连日高温",
		"abnormal_solution":    "增加遮阳网",
	}, nil)
	require.NotNil(t, view.AbnormalEvent)
	assert.Equal(t, "连日高温", view.AbnormalEvent.Description)
	assert.Equal(t, "增加遮阳网", view.AbnormalEvent.Measures)

	// a populated structured event still shadows the legacy fields
	view = DailyLog(map[string]any{
		"abnormal_event":       map[string]any{"description": "虫害"},
		"is_abnormal":          true,
		"abnormal_description": "连日高温",
	}, nil)
	require.NotNil(t, view.AbnormalEvent)
	assert.Equal(t, "虫害", view.AbnormalEvent.Description)
}

func TestAbnormalEventLegacyFlag(t *testing.T) {
	view := DailyLog(map[string]any{
		"is_abnormal":          true,
		"abnormal_description": "连日高温",
		"abnormal_solution":    "增加遮阳网",
	}, nil)
	require.NotNil(t, view.AbnormalEvent)
	assert.Equal(t, "", view.AbnormalEvent.Title)
	assert.Equal(t, "连日高温", view.AbnormalEvent.Description)
	assert.Equal(t, "增加遮阳网", view.AbnormalEvent.Measures)
}

func TestDailyLogHarvest(t *testing.T) {
	view := DailyLog(map[string]any{
		"has_harvest":          true,
		"harvest_total_weight": 42.5,
		"harvest_leader_name":  "周队长",
		"harvest_team_count":   8.0,
	}, nil)
	require.NotNil(t, view.Harvest)
	// count defaults to 1 when the flag is set but the count is missing
	assert.Equal(t, 1, view.Harvest.Count)
	assert.Equal(t, 42.5, view.Harvest.TotalWeightKg)
	assert.Equal(t, "周队长", view.Harvest.LeaderName)
	assert.Equal(t, 8, view.Harvest.TeamCount)

	assert.Nil(t, DailyLog(map[string]any{"has_harvest": false}, nil).Harvest)
}

func TestDailyLogDateLabel(t *testing.T) {
	view := DailyLog(map[string]any{"date": "2024-08-03"}, nil)
	assert.Equal(t, "8月3日", view.DateLabel)

	view = DailyLog(map[string]any{"date": "not-a-date"}, nil)
	assert.Equal(t, "", view.DateLabel)
}

package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chayuan/models"
)

func TestBatchListEnvelopes(t *testing.T) {
	item := map[string]any{"id": "b1", "batch_number": "MQ-001", "category_name": "明前茶"}

	for _, payload := range []any{
		[]any{item},
		map[string]any{"data": []any{item}},
		map[string]any{"batches": []any{item}},
		map[string]any{"items": []any{item}},
	} {
		batches := BatchList(payload)
		require.Len(t, batches, 1)
		assert.Equal(t, "b1", batches[0].ID)
		assert.Equal(t, "MQ-001", batches[0].BatchNumber)
	}

	assert.Empty(t, BatchList(map[string]any{"weird": true}))
	assert.Empty(t, BatchList("garbage"))
	assert.Empty(t, BatchList(nil))
}

func TestBatchItemSyntheticFields(t *testing.T) {
	view := BatchItem(map[string]any{}, 0)
	assert.Equal(t, "temp-batch-0", view.ID)
	assert.Equal(t, "BATCH-1", view.BatchNumber)
	assert.Equal(t, "未知品类", view.CategoryName)
	require.NotNil(t, view.Grade)
	assert.Equal(t, "优选", view.Grade.Name)

	// same payload, same index, same IDs
	again := BatchItem(map[string]any{}, 0)
	assert.Equal(t, view, again)
}

func TestBatchItemIdentifierPriority(t *testing.T) {
	view := BatchItem(map[string]any{"_id": "mongo-id", "uuid": "u-1"}, 3)
	assert.Equal(t, "mongo-id", view.ID)

	view = BatchItem(map[string]any{"slug": "mingqian-001"}, 3)
	assert.Equal(t, "mingqian-001", view.ID)
}

func TestBatchItemGradeVariants(t *testing.T) {
	// flat string grade
	view := BatchItem(map[string]any{"id": "b1", "grade": "特级"}, 0)
	require.NotNil(t, view.Grade)
	assert.Equal(t, "特级", view.Grade.Name)
	assert.Equal(t, "b1", view.Grade.ID)

	// nested grade object with camelCase badge
	view = BatchItem(map[string]any{
		"id":      "b2",
		"gradeId": "g-9",
		"grade":   map[string]any{"name": "优选", "badgeUrl": "http://x/badge.png"},
	}, 0)
	require.NotNil(t, view.Grade)
	assert.Equal(t, "g-9", view.Grade.ID)
	assert.Equal(t, "http://x/badge.png", view.Grade.BadgeURL)

	// populated grade_id object wins over the grade string
	view = BatchItem(map[string]any{
		"id":       "b3",
		"grade":    "旧值",
		"grade_id": map[string]any{"_id": "g-1", "name": "佳品", "badge_url": "http://x/b1.png"},
	}, 0)
	require.NotNil(t, view.Grade)
	assert.Equal(t, models.GradeView{ID: "g-1", Name: "佳品", BadgeURL: "http://x/b1.png"}, *view.Grade)
}

func TestBadgeURLDeepScan(t *testing.T) {
	view := BatchItem(map[string]any{
		"id":       "b1",
		"grade_id": map[string]any{"name": "优选", "badge": map[string]any{"image_url": "http://x/b.png"}},
	}, 0)
	require.NotNil(t, view.Grade)
	assert.Equal(t, "http://x/b.png", view.Grade.BadgeURL)

	// no direct or nested badge keys at all: recursive key scan finds it
	view = BatchItem(map[string]any{
		"id": "b2",
		"grade_id": map[string]any{
			"name": "优选",
			"meta": map[string]any{"badge_art": "http://x/deep.png"},
		},
	}, 0)
	require.NotNil(t, view.Grade)
	assert.Equal(t, "http://x/deep.png", view.Grade.BadgeURL)
}

func TestFindURLByKeyPatterns(t *testing.T) {
	obj := map[string]any{
		"grade_id": map[string]any{"badge": map[string]any{"image_url": "http://x/b.png"}},
	}
	assert.Equal(t, "http://x/b.png", FindURLByKeyPatterns(obj, []string{"badge", "icon", "image"}))

	assert.Equal(t, "", FindURLByKeyPatterns(map[string]any{"badge": ""}, []string{"badge"}))
	assert.Equal(t, "", FindURLByKeyPatterns(nil, []string{"badge"}))
	assert.Equal(t, "", FindURLByKeyPatterns("str", []string{"badge"}))
}

func TestBatchItemCoverImage(t *testing.T) {
	view := BatchItem(map[string]any{
		"id":                "b1",
		"cover_image_url":   "http://x/cover.jpg",
		"images_and_videos": []any{"http://x/fallback.jpg"},
	}, 0)
	assert.Equal(t, "http://x/cover.jpg", view.CoverImageURL)

	view = BatchItem(map[string]any{
		"id":                "b1",
		"images_and_videos": []any{"http://x/fallback.jpg"},
	}, 0)
	assert.Equal(t, "http://x/fallback.jpg", view.CoverImageURL)

	// main_image_url is the last resort, after the media arrays
	view = BatchItem(map[string]any{
		"id":             "b1",
		"main_image_url": "http://x/main.jpg",
	}, 0)
	assert.Equal(t, "http://x/main.jpg", view.CoverImageURL)

	view = BatchItem(map[string]any{
		"id":                "b1",
		"main_image_url":    "http://x/main.jpg",
		"images_and_videos": []any{"http://x/first.jpg"},
	}, 0)
	assert.Equal(t, "http://x/first.jpg", view.CoverImageURL)
}

func TestBatchItemTeaMaster(t *testing.T) {
	view := BatchItem(map[string]any{
		"id": "b1",
		"teaMaster": map[string]any{
			"name":            "林师傅",
			"title":           "高级制茶师",
			"avatarUrl":       "http://x/lin.jpg",
			"experienceYears": 18.0,
		},
	}, 0)
	require.NotNil(t, view.TeaMaster)
	assert.Equal(t, "林师傅", view.TeaMaster.Name)
	assert.Equal(t, "高级制茶师", view.TeaMaster.Role)
	assert.Equal(t, 18, view.TeaMaster.ExperienceYears)

	assert.Nil(t, BatchItem(map[string]any{"id": "b1"}, 0).TeaMaster)
}

// Normalizing an already-normalized item must be a no-op.
func TestBatchItemIdempotent(t *testing.T) {
	raw := map[string]any{
		"id":                    "b1",
		"batchNumber":           "MQ-001",
		"category_name":         "明前茶",
		"gradeId":               "g-1",
		"grade":                 map[string]any{"name": "特级", "badgeUrl": "http://x/b.png"},
		"title":                 "明前头采",
		"summary":               "清明前采摘",
		"teaMaster":             map[string]any{"name": "林师傅", "avatarUrl": "http://x/lin.jpg"},
		"cover_image_url":       "http://x/cover.jpg",
		"harvest_days_count":    3.0,
		"harvest_records_count": 5.0,
	}
	first := BatchItem(raw, 0)

	data, err := json.Marshal(first)
	require.NoError(t, err)
	var roundTripped map[string]any
	require.NoError(t, json.Unmarshal(data, &roundTripped))

	second := BatchItem(roundTripped, 0)
	assert.Equal(t, first, second)
}

func TestBatchDetailMapping(t *testing.T) {
	payload := map[string]any{
		"success": true,
		"data": map[string]any{
			"id":                   "batch-9",
			"batchNumber":          "MQ-009",
			"categoryName":         "明前茶",
			"detailTitle":          "明前九号",
			"finalProductWeightKg": "12.5",
			"grade":                map[string]any{"name": "特级", "badgeUrl": "http://x/b.png"},
			"gradeId":              "g-1",
			"teaMaster":            map[string]any{"name": "林师傅", "avatarUrl": "http://x/lin.jpg"},
			"detailCoverImageUrl":  "http://x/hero.jpg",
			"batchLinks": []any{
				map[string]any{"harvestRecord": map[string]any{
					"id":                "h1",
					"harvestDate":       "2024-04-01",
					"freshLeafWeightKg": 30.0,
					"mediaUrls":         []any{"http://x/h1.jpg"},
					"harvestLeader":     map[string]any{"name": "周队长", "avatarUrl": "http://x/zhou.jpg"},
				}},
				map[string]any{"note": "no harvest record here"},
			},
			"productionSteps": []any{
				map[string]any{
					"step_name":  "杀青",
					"craft_type": "manual",
					"craft_details": map[string]any{
						"media_urls": []any{"http://x/shaqing.jpg"},
						"purpose":    "钝化酶活",
					},
				},
			},
			"productAppreciation": map[string]any{
				"dry_tea_image":      "http://x/dry.jpg",
				"brewed_tea_image":   "http://x/brewed.jpg",
				"tasting_notes":      "兰花香",
				"brewing_suggestion": "85°C冲泡",
				"storage_method":     "避光冷藏",
			},
		},
	}

	view := BatchDetail(payload)
	assert.Equal(t, "batch-9", view.ID)
	assert.Equal(t, "明前九号", view.Title)
	assert.Equal(t, 12.5, view.FinalProductWeightKg)
	assert.Equal(t, "http://x/hero.jpg", view.CoverImageURL)
	require.NotNil(t, view.Grade)
	assert.Equal(t, "g-1", view.Grade.ID)

	require.Len(t, view.HarvestRecords, 1)
	record := view.HarvestRecords[0]
	assert.Equal(t, "h1", record.ID)
	assert.Equal(t, 30.0, record.WeightKg)
	assert.Equal(t, "周队长团队", record.Team.Name)
	require.Len(t, record.Team.Members, 1)
	assert.Equal(t, "周队长", record.Team.Members[0].Name)

	require.Len(t, view.ProductionSteps, 1)
	step := view.ProductionSteps[0]
	assert.Equal(t, "杀青", step.StepName)
	assert.Equal(t, models.CraftManual, step.CraftType)
	assert.Equal(t, "钝化酶活", step.Details.Purpose)

	require.NotNil(t, view.ProductDisplay)
	assert.Equal(t, "http://x/dry.jpg", view.ProductDisplay.DryTeaImage)
	require.NotNil(t, view.TastingReport)
	assert.Equal(t, "85°C冲泡", view.TastingReport.BrewingGuide)
	assert.Equal(t, "避光冷藏", view.TastingReport.StorageGuide)
}

func TestBatchDetailDefaults(t *testing.T) {
	view := BatchDetail(map[string]any{"data": map[string]any{}})
	assert.Equal(t, "未知批次", view.BatchNumber)
	assert.Equal(t, "未知品类", view.CategoryName)
	assert.Equal(t, "未知批次", view.Title) // falls back to the batch number
	require.NotNil(t, view.Grade)
	assert.Equal(t, "佳品级", view.Grade.Name)
	assert.Nil(t, view.ProductDisplay)
	assert.Nil(t, view.TastingReport)
	assert.Empty(t, view.HarvestRecords)
	assert.Empty(t, view.ProductionSteps)
}

func TestProductionStepCraftFallback(t *testing.T) {
	// craft_details empty, craft_type modern but the modern block is empty
	// too: falls back to manual and corrects the craft type
	payload := map[string]any{
		"productionSteps": []any{
			map[string]any{
				"step_name":     "揉捻",
				"craft_type":    "modern",
				"craft_details": map[string]any{"purpose": "", "media_urls": []any{}},
				"modern_craft":  map[string]any{"method": ""},
				"manual_craft":  map[string]any{"method": "手工揉捻40分钟", "sensory_change": "条索紧结"},
			},
		},
	}
	view := BatchDetail(payload)
	require.Len(t, view.ProductionSteps, 1)
	step := view.ProductionSteps[0]
	assert.Equal(t, models.CraftManual, step.CraftType)
	assert.Equal(t, "手工揉捻40分钟", step.Details.Method)
	assert.Equal(t, "条索紧结", step.Details.SensoryChange)

	// modern block populated: craft type stays modern
	payload = map[string]any{
		"productionSteps": []any{
			map[string]any{
				"step_name":    "干燥",
				"craft_type":   "modern",
				"modern_craft": map[string]any{"method": "提香机80°C"},
				"images":       []any{"http://x/dry-step.jpg"},
			},
		},
	}
	view = BatchDetail(payload)
	require.Len(t, view.ProductionSteps, 1)
	step = view.ProductionSteps[0]
	assert.Equal(t, models.CraftModern, step.CraftType)
	assert.Equal(t, "提香机80°C", step.Details.Method)
	// media falls back to the step-level legacy images array
	assert.Equal(t, []string{"http://x/dry-step.jpg"}, step.Details.MediaURLs)
}

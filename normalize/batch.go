package normalize

import (
	"fmt"
	"sort"
	"strings"

	"chayuan/models"
)

// FindURLByKeyPatterns walks an object graph and returns the first non-empty
// string whose key name contains one of the patterns. Keys are visited in
// sorted order at each level so the scan is deterministic.
func FindURLByKeyPatterns(value any, patterns []string) string {
	switch v := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			lower := strings.ToLower(key)
			for _, pattern := range patterns {
				if strings.Contains(lower, pattern) {
					if s, ok := v[key].(string); ok && strings.TrimSpace(s) != "" {
						return s
					}
				}
			}
		}
		for _, key := range keys {
			if nested := FindURLByKeyPatterns(v[key], patterns); nested != "" {
				return nested
			}
		}
	case []any:
		for _, item := range v {
			if nested := FindURLByKeyPatterns(item, patterns); nested != "" {
				return nested
			}
		}
	}
	return ""
}

// BatchList unwraps any of the historical batch-list envelopes
// ({data: [...]}, a bare array, {batches: [...]}, {items: [...]}) and
// normalizes every item.
func BatchList(payload any) []models.BatchListItemView {
	var items []any
	switch v := payload.(type) {
	case []any:
		items = v
	case map[string]any:
		for _, key := range []string{"data", "batches", "items"} {
			if found := asSlice(v[key]); found != nil {
				items = found
				break
			}
		}
	}
	out := make([]models.BatchListItemView, 0, len(items))
	for index, item := range items {
		if raw := asMap(item); raw != nil {
			out = append(out, BatchItem(raw, index))
		}
	}
	return out
}

// BatchItem normalizes one raw batch list entry.
//
// When the backend omits every identifier field the ID is fabricated from
// the item's position, so re-normalizing the same payload always yields the
// same IDs. Stability across separate fetches is not guaranteed in that
// degenerate case.
func BatchItem(raw map[string]any, index int) models.BatchListItemView {
	id := strField(raw, "id", "_id", "batch_id", "batchId", "uuid", "slug")
	if id == "" {
		id = fmt.Sprintf("temp-batch-%d", index)
	}

	batchNumber := strField(raw, "batchNumber", "batch_number", "batchNo", "code", "name")
	if batchNumber == "" {
		batchNumber = fmt.Sprintf("BATCH-%d", index+1)
	}

	categoryName := strField(raw, "category_name", "category", "categoryName", "category_label")
	if categoryName == "" {
		categoryName = "未知品类"
	}

	view := models.BatchListItemView{
		ID:            id,
		BatchNumber:   batchNumber,
		CategoryName:  categoryName,
		Grade:         gradeView(raw, id, "优选"),
		Title:         strField(raw, "title", "detail_title", "detailTitle"),
		Summary:       strField(raw, "summary", "description"),
		Notes:         strField(raw, "notes", "remark"),
		TeaMaster:     batchTeaMaster(raw),
		CoverImageURL: coverImageURL(raw),
	}
	if n, ok := numField(raw, "harvest_days_count", "harvestDaysCount"); ok {
		view.HarvestDaysCount = int(n)
	}
	if n, ok := numField(raw, "harvest_records_count", "harvestRecordsCount"); ok {
		view.HarvestRecordsCount = int(n)
	}
	return view
}

// gradeView reconciles the three grade encodings: a populated grade_id
// object, a nested grade object, or a flat grade string. Every batch gets a
// grade; defaultName fills the gap when the backend sent none.
func gradeView(raw map[string]any, batchID, defaultName string) *models.GradeView {
	gradeValue := raw["grade"]
	gradeObj := asMap(gradeValue)
	gradeStr, _ := gradeValue.(string)

	source := asMap(raw["grade_id"])
	if source == nil {
		source = asMap(raw["gradeId"])
	}
	if source == nil {
		source = gradeObj
	}

	name := ""
	if source != nil {
		name = strField(source, "name")
	}
	if name == "" {
		name = strings.TrimSpace(gradeStr)
	}
	if name == "" {
		name = defaultName
	}

	gradeID := strField(raw, "gradeId", "grade_id")
	if source != nil && gradeID == "" {
		gradeID = strField(source, "_id", "id")
	}
	if gradeID == "" {
		gradeID = batchID
	}

	badge := ""
	if source != nil {
		badge = strField(source, "badge_url", "badgeUrl", "badge_image_url", "badgeImageUrl")
		if badge == "" {
			if badgeObj := asMap(source["badge"]); badgeObj != nil {
				badge = strField(badgeObj, "image_url", "imageUrl", "full_url", "fullUrl", "url")
			}
		}
		if badge == "" {
			badge = FindURLByKeyPatterns(source, []string{"badge", "icon", "image"})
		}
	}

	return &models.GradeView{ID: gradeID, Name: name, BadgeURL: badge}
}

func coverImageURL(raw map[string]any) string {
	if url := firstMediaURL(raw,
		[]string{
			"coverImageUrl", "cover_image_url",
			"detail_cover_image_url", "detailCoverImageUrl",
			"hero_media", "heroMedia", "hero_image", "heroImage",
		},
		[]string{"images_and_videos", "imagesAndVideos", "media_urls", "mediaUrls"},
	); url != "" {
		return url
	}
	// last resort, checked after the media arrays
	return strField(raw, "main_image_url", "mainImageUrl")
}

func batchTeaMaster(raw map[string]any) *models.TeaMaster {
	return TeaMasterFrom(ResolveFromSources([]map[string]any{raw},
		[]string{"teaMaster", "tea_master", "tea_master_id", "teaMasterId"}))
}

// BatchDetail maps the batch-detail payload, unwrapping the
// {success, data: {...}} envelope and flattening the nested
// batchLinks/productionSteps/productAppreciation sections.
func BatchDetail(payload any) models.BatchDetailView {
	raw := asMap(payload)
	if inner := asMap(raw["data"]); inner != nil {
		raw = inner
	}
	if raw == nil {
		raw = map[string]any{}
	}

	id := strField(raw, "id", "_id")
	batchNumber := strField(raw, "batchNumber", "batch_number", "name")
	if batchNumber == "" {
		batchNumber = "未知批次"
	}
	categoryName := strField(raw, "categoryName", "category_name", "category")
	if categoryName == "" {
		categoryName = "未知品类"
	}
	title := strField(raw, "detailTitle", "detail_title", "title")
	if title == "" {
		title = batchNumber
	}

	view := models.BatchDetailView{
		BatchListItemView: models.BatchListItemView{
			ID:            id,
			BatchNumber:   batchNumber,
			CategoryName:  categoryName,
			Grade:         gradeView(raw, id, "佳品级"),
			Title:         title,
			Summary:       strField(raw, "summary", "description", "notes"),
			Notes:         strField(raw, "notes"),
			TeaMaster:     batchTeaMaster(raw),
			CoverImageURL: coverImageURL(raw),
		},
		HarvestRecords:  harvestRecords(raw),
		ProductionSteps: productionSteps(raw),
	}
	if weight, ok := numField(raw, "finalProductWeightKg", "final_product_weight_kg"); ok {
		view.FinalProductWeightKg = weight
	}

	if appreciation := asMap(ResolveFromSources([]map[string]any{raw},
		[]string{"productAppreciation", "product_appreciation"})); appreciation != nil {
		view.ProductDisplay = &models.ProductDisplay{
			DryTeaImage:    strField(appreciation, "dry_tea_image", "dryTeaImage"),
			BrewedTeaImage: strField(appreciation, "brewed_tea_image", "brewedTeaImage"),
		}
		view.TastingReport = &models.TastingReport{
			TastingNotes: strField(appreciation, "tasting_notes", "tastingNotes"),
			BrewingGuide: strField(appreciation, "brewing_suggestion", "brewingSuggestion", "brewing_guide", "brewingGuide"),
			StorageGuide: strField(appreciation, "storage_method", "storageMethod", "storage_guide", "storageGuide"),
		}
	}

	return view
}

// harvestRecords flattens batchLinks[].harvestRecord into the story
// timeline's picking runs.
func harvestRecords(raw map[string]any) []models.HarvestRecordView {
	links := mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"batchLinks", "batch_links"}))
	out := make([]models.HarvestRecordView, 0, len(links))
	for _, link := range links {
		record := asMap(ResolveFromSources([]map[string]any{link}, []string{"harvestRecord", "harvest_record"}))
		if record == nil {
			continue
		}
		weight, _ := numField(record, "freshLeafWeightKg", "fresh_leaf_weight_kg", "weight_kg", "weightKg")
		view := models.HarvestRecordView{
			ID:       strField(record, "id", "_id"),
			Date:     strField(record, "harvestDate", "harvest_date", "date"),
			WeightKg: weight,
			Weather:  "晴",
			Images:   rawStringSlice(ResolveFromSources([]map[string]any{record}, []string{"mediaUrls", "media_urls", "images"})),
			Team:     models.HarvestTeam{Name: "采摘队", Members: []models.HarvestTeamMember{}},
		}
		if leader := asMap(ResolveFromSources([]map[string]any{record}, []string{"harvestLeader", "harvest_leader"})); leader != nil {
			name := strField(leader, "name")
			if name != "" {
				view.Team = models.HarvestTeam{
					Name: name + "团队",
					Members: []models.HarvestTeamMember{{
						Name:      name,
						AvatarURL: strField(leader, "avatarUrl", "avatar_url"),
					}},
				}
			}
		}
		out = append(out, view)
	}
	return out
}

// productionSteps resolves each step's craft details. The back office mainly
// writes craft_details; when that block is empty the manual/modern block
// selected by craft_type is used, switching to the other one if the selected
// block is also empty.
func productionSteps(raw map[string]any) []models.ProductionStepView {
	steps := mapSlice(ResolveFromSources([]map[string]any{raw}, []string{"productionSteps", "production_steps"}))
	out := make([]models.ProductionStepView, 0, len(steps))
	for _, step := range steps {
		manual := asMap(ResolveFromSources([]map[string]any{step}, []string{"manual_craft", "manualCraft"}))
		modern := asMap(ResolveFromSources([]map[string]any{step}, []string{"modern_craft", "modernCraft"}))
		source := asMap(ResolveFromSources([]map[string]any{step}, []string{"craft_details", "craftDetails"}))

		craftType := models.CraftManual
		if strField(step, "craft_type", "craftType") == string(models.CraftModern) {
			craftType = models.CraftModern
		}

		if emptyCraftBlock(source) {
			if craftType == models.CraftModern {
				source = modern
				if emptyCraftBlock(source) && !emptyCraftBlock(manual) {
					craftType = models.CraftManual
					source = manual
				}
			} else {
				source = manual
				if emptyCraftBlock(source) && !emptyCraftBlock(modern) {
					craftType = models.CraftModern
					source = modern
				}
			}
		}
		if source == nil {
			source = map[string]any{}
		}

		media := rawStringSlice(ResolveFromSources([]map[string]any{source}, []string{"media_urls", "mediaUrls"}))
		if len(media) == 0 {
			media = rawStringSlice(step["images"])
		}

		out = append(out, models.ProductionStepView{
			StepName:  strField(step, "step_name", "stepName"),
			CraftType: craftType,
			Details: models.StepDetails{
				MediaURLs:     media,
				Purpose:       strField(source, "purpose"),
				Method:        strField(source, "method"),
				SensoryChange: strField(source, "sensory_change", "sensoryChange"),
				Value:         strField(source, "value"),
			},
		})
	}
	return out
}

// emptyCraftBlock reports whether every value in a craft block is blank.
func emptyCraftBlock(obj map[string]any) bool {
	if obj == nil {
		return true
	}
	for _, value := range obj {
		switch v := value.(type) {
		case nil:
		case string:
			if v != "" {
				return false
			}
		case []any:
			if len(v) > 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

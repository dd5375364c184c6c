package models

// GradeView is a batch quality grade with its optional badge artwork.
type GradeView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	BadgeURL string `json:"badgeUrl,omitempty"`
}

// BatchListItemView is one card in the per-category batch list.
//
// JSON field names here are deliberately a subset of the candidate key lists
// the batch adapter resolves from, so feeding a marshalled view back through
// the adapter is a no-op.
type BatchListItemView struct {
	ID                  string     `json:"id"`
	BatchNumber         string     `json:"batchNumber"`
	CategoryName        string     `json:"categoryName"`
	Grade               *GradeView `json:"grade,omitempty"`
	Title               string     `json:"title,omitempty"`
	Summary             string     `json:"summary,omitempty"`
	Notes               string     `json:"notes,omitempty"`
	TeaMaster           *TeaMaster `json:"teaMaster,omitempty"`
	CoverImageURL       string     `json:"coverImageUrl,omitempty"`
	HarvestDaysCount    int        `json:"harvestDaysCount,omitempty"`
	HarvestRecordsCount int        `json:"harvestRecordsCount,omitempty"`
}

// HarvestTeamMember is one person on a picking team.
type HarvestTeamMember struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// HarvestTeam is the crew credited with one picking run.
type HarvestTeam struct {
	Name    string              `json:"name"`
	Members []HarvestTeamMember `json:"members"`
}

// HarvestRecordView is one picking run in a batch's story timeline.
type HarvestRecordView struct {
	ID       string      `json:"id"`
	Date     string      `json:"date"`
	WeightKg float64     `json:"weightKg"`
	Weather  string      `json:"weather,omitempty"`
	Images   []string    `json:"images"`
	Team     HarvestTeam `json:"team"`
}

// CraftType marks which production craft a step used.
type CraftType string

const (
	CraftManual CraftType = "manual"
	CraftModern CraftType = "modern"
)

// StepDetails is the normalized content of one production step.
type StepDetails struct {
	MediaURLs     []string `json:"mediaUrls"`
	Purpose       string   `json:"purpose,omitempty"`
	Method        string   `json:"method,omitempty"`
	SensoryChange string   `json:"sensoryChange,omitempty"`
	Value         string   `json:"value,omitempty"`
}

// ProductionStepView is one stage of the tea-making process.
type ProductionStepView struct {
	StepName  string      `json:"stepName"`
	CraftType CraftType   `json:"craftType"`
	Details   StepDetails `json:"details"`
}

// ProductDisplay holds the finished-product photography.
type ProductDisplay struct {
	DryTeaImage    string `json:"dryTeaImage,omitempty"`
	BrewedTeaImage string `json:"brewedTeaImage,omitempty"`
}

// TastingReport is the master's appraisal of the finished batch.
type TastingReport struct {
	TastingNotes string `json:"tastingNotes,omitempty"`
	BrewingGuide string `json:"brewingGuide,omitempty"`
	StorageGuide string `json:"storageGuide,omitempty"`
}

// BatchDetailView is the full traceability story of one batch, from fresh
// leaves to the finished product.
type BatchDetailView struct {
	BatchListItemView

	FinalProductWeightKg float64              `json:"finalProductWeightKg,omitempty"`
	HarvestRecords       []HarvestRecordView  `json:"harvestRecords"`
	ProductionSteps      []ProductionStepView `json:"productionSteps"`
	ProductDisplay       *ProductDisplay      `json:"productDisplay,omitempty"`
	TastingReport        *TastingReport       `json:"tastingReport,omitempty"`
}

// Category is one entry of the category filter, slug included for routing.
type Category struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count,omitempty"`
}

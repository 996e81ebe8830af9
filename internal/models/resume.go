package models

import (
	"time"

	"gorm.io/datatypes"
)

// Resume is the root row written once per successful pipeline run. The
// parsed_json column carries the summary/skills/category bundle.
type Resume struct {
	ID         int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64          `gorm:"not null;index" json:"user_id"`
	FilePath   string         `gorm:"type:text;not null" json:"file_path"`
	BlobURL    string         `gorm:"type:text" json:"blob_url"`
	ParsedJSON datatypes.JSON `gorm:"type:jsonb" json:"parsed_json"`
	UploadedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"uploaded_at"`
}

func (Resume) TableName() string {
	return "resumes"
}

// ResumeAnalysis is the JSON bundle stored in resumes.parsed_json.
type ResumeAnalysis struct {
	Summary           string   `json:"summary"`
	Skills            []string `json:"skills"`
	Category          *string  `json:"category"`
	AnalysisTimestamp string   `json:"analysis_timestamp"`
}

// EvaluationResult holds the parsed report sections for one resume.
// Sections the report parser could not locate stay nil.
type EvaluationResult struct {
	ID          int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ResumeID    int64          `gorm:"not null;index" json:"resume_id"`
	Strength    *string        `gorm:"type:text" json:"strength,omitempty"`
	Weakness    *string        `gorm:"type:text" json:"weakness,omitempty"`
	Improvement *string        `gorm:"type:text" json:"improvement,omitempty"`
	Skills      datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	Category    *string        `gorm:"type:text" json:"category,omitempty"`
	SearchQuery string         `gorm:"type:text" json:"search_query"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (EvaluationResult) TableName() string {
	return "evaluation_results"
}

// JobRecommendation is one ranked match persisted for a resume. Rank is
// 1-based and contiguous within a run.
type JobRecommendation struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        int64     `gorm:"not null;index" json:"user_id"`
	ResumeID      int64     `gorm:"not null;index" json:"resume_id"`
	JobID         int64     `gorm:"not null" json:"job_id"`
	Score         float64   `json:"score"`
	Rank          int       `json:"rank"`
	Reason        *string   `gorm:"type:text" json:"reason,omitempty"`
	RecommendedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"recommended_at"`
}

func (JobRecommendation) TableName() string {
	return "job_recommendations"
}

// JobPosting is the read-only catalog side: this pipeline only ever selects
// from it by id.
type JobPosting struct {
	JobID         int64      `gorm:"primaryKey;column:job_id" json:"job_id"`
	PositionTitle string     `gorm:"type:text" json:"position_title"`
	Description   string     `gorm:"type:text" json:"description"`
	PostedAt      *time.Time `json:"posted_at,omitempty"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}

// CandidateMatch is one similarity-search hit, already normalized: a bare
// identifier from the search service carries a 0.0 score.
type CandidateMatch struct {
	JobID           int64   `json:"job_id"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Recommendation joins a candidate match with its catalog posting before
// persistence. Reason stays nil when no explanation was generated.
type Recommendation struct {
	Posting JobPosting
	Score   float64
	Rank    int
	Reason  *string
}

package models

type UploadResponse struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
}

type AnalyzeRequest struct {
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	DocumentID string `json:"document_id" validate:"required,uuid"`
}

type AnalyzeResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ResultResponse struct {
	ID           string        `json:"id"`
	Status       string        `json:"status"`
	Result       *AnalysisData `json:"result,omitempty"`
	ErrorMessage *string       `json:"error_message,omitempty"`
}

type AnalysisData struct {
	ResumeID        int64                `json:"resume_id"`
	BlobURL         string               `json:"blob_url"`
	Strength        *string              `json:"strength,omitempty"`
	Weakness        *string              `json:"weakness,omitempty"`
	Improvement     *string              `json:"improvement,omitempty"`
	Skills          []string             `json:"skills"`
	Category        *string              `json:"category,omitempty"`
	SearchQuery     string               `json:"search_query"`
	Recommendations []RecommendationData `json:"recommendations"`
}

type RecommendationData struct {
	JobID  int64   `json:"job_id"`
	Score  float64 `json:"score"`
	Rank   int     `json:"rank"`
	Reason *string `json:"reason,omitempty"`
}

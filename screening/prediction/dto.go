package prediction

import "time"

const (
	// DefaultTopK is used when a request omits top_k
	DefaultTopK = 3

	// DefaultThreshold is used when a request omits threshold. The value is
	// accepted and stored on the request for API compatibility but is not
	// applied anywhere in scoring.
	DefaultThreshold = 0.3
)

// AnalyzeResumeRequest - DTO for the predict endpoint
type AnalyzeResumeRequest struct {
	ResumeText string   `json:"resume_text"`
	TopK       *int     `json:"top_k,omitempty"`
	Threshold  *float64 `json:"threshold,omitempty"`
}

// EffectiveTopK returns top_k with the default applied and negatives
// clamped to zero
func (r *AnalyzeResumeRequest) EffectiveTopK() int {
	if r.TopK == nil {
		return DefaultTopK
	}
	if *r.TopK < 0 {
		return 0
	}
	return *r.TopK
}

// EffectiveThreshold returns threshold with the default applied
func (r *AnalyzeResumeRequest) EffectiveThreshold() float64 {
	if r.Threshold == nil {
		return DefaultThreshold
	}
	return *r.Threshold
}

// AnalyzeUploadRequest - DTO for the file-based predict endpoint
type AnalyzeUploadRequest struct {
	FileName  string
	Data      []byte
	TopK      *int
	Threshold *float64
}

// SimilarRoleResponse - one entry of similar_roles in API responses
type SimilarRoleResponse struct {
	JobRole         string  `json:"job_role"`
	SimilarityScore float64 `json:"similarity_score"`
}

// AnalyzeResumeResponse - DTO returned by the predict endpoints
type AnalyzeResumeResponse struct {
	ResumeID          int64                 `json:"resume_id"`
	PredictedCategory string                `json:"predicted_category"`
	ConfidenceScore   float64               `json:"confidence_score"`
	SimilarRoles      []SimilarRoleResponse `json:"similar_roles"`
}

// PredictionResponse - DTO for fetching a stored prediction
type PredictionResponse struct {
	ResumeID          int64                 `json:"resume_id"`
	ResumeText        string                `json:"resume_text"`
	PredictedCategory string                `json:"predicted_category"`
	ConfidenceScore   float64               `json:"confidence_score"`
	SimilarRoles      []SimilarRoleResponse `json:"similar_roles"`
	FileURL           string                `json:"file_url,omitempty"`
	CreatedAt         time.Time             `json:"created_at"`
}

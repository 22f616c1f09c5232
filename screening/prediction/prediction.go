package prediction

import (
	"time"

	"github.com/matchlabs/resumerank/pkg/kernel"
)

// Prediction is the result of analyzing one resume: its predicted category,
// the calibrated confidence and the roles most similar to it in the JD
// catalog. Persisted once per request, never updated.
type Prediction struct {
	ID           kernel.ResumeID      `db:"id" json:"id"`
	ResumeText   string               `db:"resume_text" json:"resume_text"`
	Category     kernel.CategoryLabel `db:"predicted_category" json:"predicted_category"`
	Confidence   float64              `db:"confidence_score" json:"confidence_score"`
	Embedding    kernel.Embedding     `db:"-" json:"-"`
	SimilarRoles []SimilarRole        `db:"-" json:"similar_roles"`
	FileURL      string               `db:"file_url" json:"file_url,omitempty"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
}

// SimilarRole is one ranked JD catalog entry for a prediction
type SimilarRole struct {
	Role  kernel.JobRole `db:"job_role" json:"job_role"`
	Score float64        `db:"similarity_score" json:"similarity_score"`
}

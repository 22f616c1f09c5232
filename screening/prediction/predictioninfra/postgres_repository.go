package predictioninfra

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pgvector/pgvector-go"

	"github.com/matchlabs/resumerank/pkg/kernel"
	"github.com/matchlabs/resumerank/screening/prediction"
)

// PostgresPredictionRepository implements prediction.Repository using
// PostgreSQL
type PostgresPredictionRepository struct {
	db *sqlx.DB
}

// NewPostgresPredictionRepository creates a new PostgreSQL prediction
// repository
func NewPostgresPredictionRepository(db *sqlx.DB) *PostgresPredictionRepository {
	return &PostgresPredictionRepository{db: db}
}

// ============================================================================
// Database Models
// ============================================================================

type resumeModel struct {
	ID                int64          `db:"id"`
	ResumeText        string         `db:"resume_text"`
	PredictedCategory string         `db:"predicted_category"`
	ConfidenceScore   float64        `db:"confidence_score"`
	FileURL           sql.NullString `db:"file_url"`
	CreatedAt         time.Time      `db:"created_at"`
}

type similarityModel struct {
	JobRole         string  `db:"job_role"`
	SimilarityScore float64 `db:"similarity_score"`
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Save inserts the resume row, captures its generated id and inserts one
// similarity row per ranked role, all inside one transaction. Any failure
// rolls everything back.
func (r *PostgresPredictionRepository) Save(ctx context.Context, p *prediction.Prediction) (kernel.ResumeID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, prediction.ErrRegistry.NewWithCause(prediction.CodePersistFailed, err).
			WithDetail("operation", "begin_tx")
	}
	defer tx.Rollback()

	insertResume := `
		INSERT INTO resumes (resume_text, predicted_category, confidence_score, embedding, file_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err = tx.QueryRowxContext(ctx, insertResume,
		p.ResumeText,
		string(p.Category),
		p.Confidence,
		embeddingValue(p.Embedding),
		nullString(p.FileURL),
	).Scan(&id)
	if err != nil {
		return 0, prediction.ErrRegistry.NewWithCause(prediction.CodePersistFailed, err).
			WithDetail("operation", "insert_resume")
	}

	insertSimilarity := `
		INSERT INTO similarity_scores (resume_id, job_role, similarity_score)
		VALUES ($1, $2, $3)`

	for _, role := range p.SimilarRoles {
		if _, err := tx.ExecContext(ctx, insertSimilarity, id, role.Role.String(), role.Score); err != nil {
			return 0, prediction.ErrRegistry.NewWithCause(prediction.CodePersistFailed, err).
				WithDetail("operation", "insert_similarity").
				WithDetail("job_role", role.Role.String())
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, prediction.ErrRegistry.NewWithCause(prediction.CodePersistFailed, err).
			WithDetail("operation", "commit")
	}

	return kernel.NewResumeID(id), nil
}

// GetByID loads a stored prediction together with its similarity rows
func (r *PostgresPredictionRepository) GetByID(ctx context.Context, id kernel.ResumeID) (*prediction.Prediction, error) {
	query := `
		SELECT id, resume_text, predicted_category, confidence_score, file_url, created_at
		FROM resumes
		WHERE id = $1`

	var model resumeModel
	if err := r.db.GetContext(ctx, &model, query, id.Int64()); err != nil {
		if err == sql.ErrNoRows {
			return nil, prediction.ErrPredictionNotFound().WithDetail("resume_id", id.Int64())
		}
		return nil, prediction.ErrRegistry.NewWithCause(prediction.CodeFetchFailed, err).
			WithDetail("resume_id", id.Int64())
	}

	simQuery := `
		SELECT job_role, similarity_score
		FROM similarity_scores
		WHERE resume_id = $1
		ORDER BY similarity_score DESC, id ASC`

	var simModels []similarityModel
	if err := r.db.SelectContext(ctx, &simModels, simQuery, id.Int64()); err != nil {
		return nil, prediction.ErrRegistry.NewWithCause(prediction.CodeFetchFailed, err).
			WithDetail("resume_id", id.Int64()).
			WithDetail("operation", "select_similarities")
	}

	similarRoles := make([]prediction.SimilarRole, len(simModels))
	for i, sm := range simModels {
		similarRoles[i] = prediction.SimilarRole{
			Role:  kernel.JobRole(sm.JobRole),
			Score: sm.SimilarityScore,
		}
	}

	return &prediction.Prediction{
		ID:           kernel.NewResumeID(model.ID),
		ResumeText:   model.ResumeText,
		Category:     kernel.CategoryLabel(model.PredictedCategory),
		Confidence:   model.ConfidenceScore,
		SimilarRoles: similarRoles,
		FileURL:      model.FileURL.String,
		CreatedAt:    model.CreatedAt,
	}, nil
}

// Delete removes the resume row; similarity rows follow via cascade
func (r *PostgresPredictionRepository) Delete(ctx context.Context, id kernel.ResumeID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id.Int64())
	if err != nil {
		return prediction.ErrRegistry.NewWithCause(prediction.CodeDeleteFailed, err).
			WithDetail("resume_id", id.Int64())
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return prediction.ErrRegistry.NewWithCause(prediction.CodeDeleteFailed, err).
			WithDetail("resume_id", id.Int64())
	}
	if affected == 0 {
		return prediction.ErrPredictionNotFound().WithDetail("resume_id", id.Int64())
	}

	return nil
}

// ============================================================================
// Helpers
// ============================================================================

// embeddingValue converts an embedding to a pgvector value, or NULL when
// the vector is absent
func embeddingValue(vec kernel.Embedding) interface{} {
	if len(vec) == 0 {
		return nil
	}
	return pgvector.NewVector([]float32(vec))
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

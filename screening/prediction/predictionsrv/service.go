package predictionsrv

import (
	"context"
	"math"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/matchlabs/resumerank/internal/pdf"
	"github.com/matchlabs/resumerank/internal/textutil"
	"github.com/matchlabs/resumerank/pkg/fsx"
	"github.com/matchlabs/resumerank/pkg/kernel"
	"github.com/matchlabs/resumerank/pkg/logx"
	"github.com/matchlabs/resumerank/screening/jd"
	"github.com/matchlabs/resumerank/screening/prediction"
)

// Service orchestrates the scoring pipeline: normalize, embed, classify,
// rank against the JD catalog, persist.
type Service struct {
	repo       prediction.Repository
	cache      prediction.Cache
	embedder   prediction.Embedder
	classifier prediction.Classifier
	corpus     *jd.Corpus
	files      fsx.FileSystem
}

// NewService creates the prediction service. cache and files may be nil;
// caching and upload retention are then disabled.
func NewService(
	repo prediction.Repository,
	cache prediction.Cache,
	embedder prediction.Embedder,
	classifier prediction.Classifier,
	corpus *jd.Corpus,
	files fsx.FileSystem,
) *Service {
	return &Service{
		repo:       repo,
		cache:      cache,
		embedder:   embedder,
		classifier: classifier,
		corpus:     corpus,
		files:      files,
	}
}

// AnalyzeResume runs the full pipeline for raw resume text. The caller has
// already rejected empty input; text that normalizes to nothing embeddable
// is still rejected here.
func (s *Service) AnalyzeResume(ctx context.Context, req prediction.AnalyzeResumeRequest) (*prediction.AnalyzeResumeResponse, error) {
	return s.analyze(ctx, req, "")
}

// AnalyzeUpload extracts text from an uploaded PDF, retains the original
// file when storage is configured, and runs the same pipeline.
func (s *Service) AnalyzeUpload(ctx context.Context, req prediction.AnalyzeUploadRequest) (*prediction.AnalyzeResumeResponse, error) {
	text, err := pdf.ExtractText(req.Data)
	if err != nil {
		return nil, prediction.ErrInvalidFile().WithDetail("file_name", req.FileName).
			WithDetail("error", err.Error())
	}

	fileURL := s.storeUpload(ctx, req.FileName, req.Data)

	return s.analyze(ctx, prediction.AnalyzeResumeRequest{
		ResumeText: text,
		TopK:       req.TopK,
		Threshold:  req.Threshold,
	}, fileURL)
}

func (s *Service) analyze(ctx context.Context, req prediction.AnalyzeResumeRequest, fileURL string) (*prediction.AnalyzeResumeResponse, error) {
	cleanText := textutil.Clean(req.ResumeText)
	if cleanText == "" {
		return nil, prediction.ErrNoEmbeddableContent()
	}

	embedding, err := s.embedder.GenerateEmbedding(ctx, cleanText)
	if err != nil {
		return nil, prediction.ErrRegistry.NewWithCause(prediction.CodeEmbeddingFailed, err)
	}

	label, confidence, err := s.classifier.Predict(embedding)
	if err != nil {
		return nil, prediction.ErrRegistry.NewWithCause(prediction.CodeClassificationFailed, err)
	}

	matches := s.corpus.Rank(embedding, req.EffectiveTopK())
	similarRoles := make([]prediction.SimilarRole, len(matches))
	for i, m := range matches {
		similarRoles[i] = prediction.SimilarRole{
			Role:  m.Role,
			Score: m.Score,
		}
	}

	p := &prediction.Prediction{
		ResumeText:   req.ResumeText,
		Category:     label,
		Confidence:   confidence,
		Embedding:    embedding,
		SimilarRoles: similarRoles,
		FileURL:      fileURL,
		CreatedAt:    time.Now(),
	}

	id, err := s.repo.Save(ctx, p)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if s.cache != nil {
		s.cache.Set(ctx, p)
	}

	return &prediction.AnalyzeResumeResponse{
		ResumeID:          id.Int64(),
		PredictedCategory: label.String(),
		ConfidenceScore:   round4(confidence),
		SimilarRoles:      toSimilarRoleResponses(similarRoles),
	}, nil
}

// GetPrediction loads a stored prediction, consulting the cache first
func (s *Service) GetPrediction(ctx context.Context, id kernel.ResumeID) (*prediction.PredictionResponse, error) {
	var p *prediction.Prediction

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, id); ok {
			p = cached
		}
	}

	if p == nil {
		stored, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		p = stored
		if s.cache != nil {
			s.cache.Set(ctx, p)
		}
	}

	return &prediction.PredictionResponse{
		ResumeID:          p.ID.Int64(),
		ResumeText:        p.ResumeText,
		PredictedCategory: p.Category.String(),
		ConfidenceScore:   round4(p.Confidence),
		SimilarRoles:      toSimilarRoleResponses(p.SimilarRoles),
		FileURL:           p.FileURL,
		CreatedAt:         p.CreatedAt,
	}, nil
}

// GetResumeFile returns the retained original PDF for a stored prediction
func (s *Service) GetResumeFile(ctx context.Context, id kernel.ResumeID) ([]byte, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.FileURL == "" || s.files == nil {
		return nil, prediction.ErrFileNotFound().WithDetail("resume_id", id.Int64())
	}

	// uploads live under flat uuid keys, so the basename of the stored URL
	// is the object key
	data, err := s.files.Get(ctx, path.Base(p.FileURL))
	if err != nil {
		return nil, prediction.ErrRegistry.NewWithCause(prediction.CodeFetchFailed, err).
			WithDetail("resume_id", id.Int64()).
			WithDetail("operation", "download_file")
	}

	return data, nil
}

// DeletePrediction removes a stored prediction together with its cache entry
// and its retained upload. The row delete is authoritative; cache and file
// cleanup are best-effort.
func (s *Service) DeletePrediction(ctx context.Context, id kernel.ResumeID) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.cache != nil {
		s.cache.Delete(ctx, id)
	}

	if p.FileURL != "" && s.files != nil {
		if err := s.files.Delete(ctx, path.Base(p.FileURL)); err != nil {
			logx.Warnf("Failed to delete stored file for resume %s: %v", id, err)
		}
	}

	return nil
}

// storeUpload retains the original file and returns its URL. Storage is
// best-effort: a failed upload degrades to an unretained file, not a
// failed prediction.
func (s *Service) storeUpload(ctx context.Context, fileName string, data []byte) string {
	if s.files == nil {
		return ""
	}

	key := uuid.NewString() + ".pdf"
	url, err := s.files.Put(ctx, key, data, "application/pdf")
	if err != nil {
		logx.Warnf("Failed to store upload %s: %v", fileName, err)
		return ""
	}

	return url
}

func toSimilarRoleResponses(roles []prediction.SimilarRole) []prediction.SimilarRoleResponse {
	out := make([]prediction.SimilarRoleResponse, len(roles))
	for i, r := range roles {
		out[i] = prediction.SimilarRoleResponse{
			JobRole:         r.Role.String(),
			SimilarityScore: r.Score,
		}
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

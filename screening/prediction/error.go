package prediction

import (
	"net/http"

	"github.com/matchlabs/resumerank/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("PREDICTION")

// Error codes
var (
	CodePredictionNotFound   = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Prediction not found")
	CodeInvalidRequestBody   = ErrRegistry.Register("INVALID_BODY", errx.TypeValidation, http.StatusBadRequest, "Invalid request body")
	CodeNoEmbeddableContent  = ErrRegistry.Register("NO_EMBEDDABLE_CONTENT", errx.TypeValidation, http.StatusBadRequest, "Resume text has no embeddable content")
	CodeInvalidFile          = ErrRegistry.Register("INVALID_FILE", errx.TypeValidation, http.StatusBadRequest, "Invalid or unreadable PDF file")
	CodeEmbeddingFailed      = ErrRegistry.Register("EMBEDDING_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to generate embedding")
	CodeClassificationFailed = ErrRegistry.Register("CLASSIFICATION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to classify resume")
	CodePersistFailed        = ErrRegistry.Register("PERSIST_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to store prediction")
	CodeFetchFailed          = ErrRegistry.Register("FETCH_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to load prediction")
	CodeFileNotFound         = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "No stored file for this prediction")
	CodeDeleteFailed         = ErrRegistry.Register("DELETE_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to delete prediction")
)

// Helper functions
func ErrPredictionNotFound() *errx.Error {
	return ErrRegistry.New(CodePredictionNotFound)
}

func ErrInvalidRequestBody() *errx.Error {
	return ErrRegistry.New(CodeInvalidRequestBody)
}

func ErrNoEmbeddableContent() *errx.Error {
	return ErrRegistry.New(CodeNoEmbeddableContent)
}

func ErrInvalidFile() *errx.Error {
	return ErrRegistry.New(CodeInvalidFile)
}

func ErrPersistFailed() *errx.Error {
	return ErrRegistry.New(CodePersistFailed)
}

func ErrFileNotFound() *errx.Error {
	return ErrRegistry.New(CodeFileNotFound)
}

package predictionapi

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/matchlabs/resumerank/pkg/kernel"
	"github.com/matchlabs/resumerank/screening/prediction"
	"github.com/matchlabs/resumerank/screening/prediction/predictionsrv"
)

// emptyResumeDetail is the exact 400 body contract for empty input
const emptyResumeDetail = "Resume text is empty."

// Handlers provides HTTP handlers for prediction operations
type Handlers struct {
	service *predictionsrv.Service
}

// NewHandlers creates a new prediction handlers instance
func NewHandlers(service *predictionsrv.Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// RegisterRoutes wires the prediction endpoints into the app
func RegisterRoutes(app *fiber.App, h *Handlers) {
	app.Post("/predict", h.Predict)
	app.Post("/predict/file", h.PredictFile)
	app.Get("/predictions/:id", h.GetPrediction)
	app.Get("/predictions/:id/file", h.GetPredictionFile)
	app.Delete("/predictions/:id", h.DeletePrediction)
}

// Predict classifies a resume and ranks it against the JD catalog
// POST /predict
func (h *Handlers) Predict(c *fiber.Ctx) error {
	var req prediction.AnalyzeResumeRequest
	if err := c.BodyParser(&req); err != nil {
		return prediction.ErrInvalidRequestBody().WithDetail("parse_error", err.Error())
	}

	if strings.TrimSpace(req.ResumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"detail": emptyResumeDetail,
		})
	}

	resp, err := h.service.AnalyzeResume(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// PredictFile classifies a resume submitted as a PDF upload
// POST /predict/file
func (h *Handlers) PredictFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return prediction.ErrInvalidFile().WithDetail("reason", "missing multipart file field")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return prediction.ErrInvalidFile().WithDetail("reason", "unreadable upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return prediction.ErrInvalidFile().WithDetail("reason", "unreadable upload")
	}

	req := prediction.AnalyzeUploadRequest{
		FileName:  fileHeader.Filename,
		Data:      data,
		TopK:      parseIntQuery(c, "top_k"),
		Threshold: parseFloatQuery(c, "threshold"),
	}

	resp, err := h.service.AnalyzeUpload(c.Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetPrediction returns a stored prediction with its similarity rows
// GET /predictions/:id
func (h *Handlers) GetPrediction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return prediction.ErrPredictionNotFound().WithDetail("id", c.Params("id"))
	}

	resp, err := h.service.GetPrediction(c.Context(), kernel.NewResumeID(id))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// GetPredictionFile streams the retained original PDF for a prediction
// GET /predictions/:id/file
func (h *Handlers) GetPredictionFile(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return prediction.ErrPredictionNotFound().WithDetail("id", c.Params("id"))
	}

	data, err := h.service.GetResumeFile(c.Context(), kernel.NewResumeID(id))
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="resume-%d.pdf"`, id))
	return c.Send(data)
}

// DeletePrediction removes a stored prediction and its similarity rows
// DELETE /predictions/:id
func (h *Handlers) DeletePrediction(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return prediction.ErrPredictionNotFound().WithDetail("id", c.Params("id"))
	}

	if err := h.service.DeletePrediction(c.Context(), kernel.NewResumeID(id)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func parseIntQuery(c *fiber.Ctx, name string) *int {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseFloatQuery(c *fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/osse101/SchalePlanner_Go/internal/domain"
	"github.com/osse101/SchalePlanner_Go/internal/logger"
	"github.com/osse101/SchalePlanner_Go/internal/metrics"
	"github.com/osse101/SchalePlanner_Go/internal/scan"
)

// multipartOverhead is the allowance for form boundaries and headers on top
// of the image itself
const multipartOverhead = 64 << 10

// ScanParseRequest carries raw vision model output to be parsed
type ScanParseRequest struct {
	Text string `json:"text" validate:"required,max=16384"`
}

// HandleScanParse parses the text a vision model returned for a screenshot
// @Summary Parse model output
// @Description Extracts the level and EXP from the JSON object embedded in model output
// @Tags scan
// @Accept json
// @Produce json
// @Param request body ScanParseRequest true "Model output"
// @Success 200 {object} domain.ScanResult
// @Failure 422 {object} ErrorResponse
// @Router /api/v1/scan/parse [post]
func HandleScanParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ScanParseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Scan parse"); err != nil {
			return
		}

		result, err := scan.ParseModelOutput(req.Text)
		recordScan(err)
		if err != nil {
			respondServiceError(w, r, "Scan parse", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleScan reads the level bar from an uploaded screenshot. svc may be nil
// when no vision model is configured.
// @Summary Scan a screenshot
// @Tags scan
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Screenshot (jpeg, png or webp)"
// @Success 200 {object} domain.ScanResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/scan [post]
func HandleScan(svc scan.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgScanDisabled)
			return
		}
		log := logger.FromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, scan.MaxImageBytes+multipartOverhead)
		file, header, err := r.FormFile(FormFieldImage)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				respondError(w, http.StatusRequestEntityTooLarge, ErrMsgImageTooLarge)
				return
			}
			log.Warn("Missing scan image", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgMissingImage)
			return
		}
		defer file.Close()

		image, err := io.ReadAll(io.LimitReader(file, scan.MaxImageBytes+1))
		if err != nil {
			log.Warn("Failed to read scan image", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgMissingImage)
			return
		}
		if len(image) > scan.MaxImageBytes {
			respondError(w, http.StatusRequestEntityTooLarge, ErrMsgImageTooLarge)
			return
		}

		mimeType := header.Header.Get("Content-Type")
		if !scan.SupportedMIMETypes[mimeType] {
			mimeType = http.DetectContentType(image)
		}
		if !scan.SupportedMIMETypes[mimeType] {
			respondError(w, http.StatusUnsupportedMediaType, ErrMsgUnsupportedType)
			return
		}

		result, err := svc.Scan(r.Context(), image, mimeType)
		recordScan(err)
		if err != nil {
			respondServiceError(w, r, "Scan", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func recordScan(err error) {
	switch {
	case err == nil:
		metrics.RecordScanResult(metrics.ResultSuccess)
	case errors.Is(err, domain.ErrUnreadableScreenshot):
		metrics.RecordScanResult(metrics.ResultUnreadable)
	default:
		metrics.RecordScanResult(metrics.ResultError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	request "funilaria_xpto/internal/adapter/http/dto/request"
	response "funilaria_xpto/internal/adapter/http/dto/response"
	"funilaria_xpto/internal/parser"
	"funilaria_xpto/internal/usecase"
	"funilaria_xpto/pkg"
)

var (
	errInvalidImportPayload = pkg.NewDomainErrorSimple("INVALID_IMPORT_INPUT", "Invalid import payload", http.StatusBadRequest)
)

// EstimateImportHandler handles HTTP requests for estimate imports and the
// version chain queries.

type EstimateImportHandler struct {
	usecase usecase.IEstimateImportUseCase
	logger  *zap.Logger
}

func NewEstimateImportHandler(uc usecase.IEstimateImportUseCase, logger *zap.Logger) *EstimateImportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EstimateImportHandler{usecase: uc, logger: logger}
}

// ImportEstimate accepts a raw EMS export for a claim and appends it to the
// claim's version chain. Validation errors reject the import with 422 and the
// full report; the rejected estimate is never persisted.
func (h *EstimateImportHandler) ImportEstimate(c *gin.Context) {
	claimID := c.Param("claim_id")

	var payload request.ImportEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidImportPayload.HTTPStatus, errInvalidImportPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.ImportEstimate(c.Request.Context(), claimID, payload.ResolveJobID(), payload.ResolveContent())
	if errors.Is(err, usecase.ErrEstimateInvalid) {
		h.logger.Warn("estimate import rejected by validation",
			zap.String("claim_id", claimID),
			zap.Float64("confidence", result.Validation.Confidence))
		c.JSON(http.StatusUnprocessableEntity, response.ImportRejectedResponse{
			Code:       "ESTIMATE_VALIDATION_FAILED",
			Message:    "Estimate failed validation and was not imported",
			Validation: response.FromValidationReport(result.Validation),
		})
		return
	}
	if err != nil {
		h.logger.Warn("estimate import failed", zap.String("claim_id", claimID), zap.Error(err))
		appErr := mapEstimateImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromImportResult(
		response.FromEstimateVersion(result.Version), result.Diff, result.Validation))
}

// GetLatestVersion returns the head of a claim's version chain.
func (h *EstimateImportHandler) GetLatestVersion(c *gin.Context) {
	claimID := c.Param("claim_id")

	latest, err := h.usecase.GetLatest(c.Request.Context(), claimID)
	if err != nil {
		appErr := mapEstimateImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateVersion(latest))
}

// GetVersionHistory returns every version of a claim, oldest first.
func (h *EstimateImportHandler) GetVersionHistory(c *gin.Context) {
	claimID := c.Param("claim_id")

	versions, err := h.usecase.GetHistory(c.Request.Context(), claimID)
	if err != nil {
		appErr := mapEstimateImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateVersions(claimID, versions))
}

// GetVersionChanges returns the persisted line-item change set of one version.
func (h *EstimateImportHandler) GetVersionChanges(c *gin.Context) {
	versionID := c.Param("version_id")

	changes, err := h.usecase.GetChanges(c.Request.Context(), versionID)
	if err != nil {
		appErr := mapEstimateImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItemChanges(versionID, changes))
}

func mapEstimateImportError(err error) *pkg.AppError {
	var parseErr *parser.ParseError
	switch {
	case errors.Is(err, usecase.ErrInvalidClaimID), errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidVersionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &parseErr):
		return pkg.NewDomainErrorSimple("ESTIMATE_PARSE_FAILED", "Estimate file could not be parsed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVersionNotFound):
		return pkg.NewDomainErrorSimple("VERSION_NOT_FOUND", "No estimate version found for this claim", http.StatusNotFound)
	case errors.Is(err, usecase.ErrVersionRetriesExhausted):
		return pkg.NewDomainErrorSimple("VERSION_CONFLICT", "Concurrent imports for this claim, retry later", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

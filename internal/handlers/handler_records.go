package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/domain"
	portssvc "github.com/bjtmarts/transfer_tracker_app/internal/core/ports/services"
	"github.com/bjtmarts/transfer_tracker_app/internal/dto"
	"github.com/bjtmarts/transfer_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// trackerHandler handles HTTP requests related to transfer records.
type trackerHandler struct {
	trackerService portssvc.TrackerSvcFacade
}

// newTrackerHandler creates a new trackerHandler.
func newTrackerHandler(ts portssvc.TrackerSvcFacade) *trackerHandler {
	return &trackerHandler{
		trackerService: ts,
	}
}

// registerTrackerRoutes registers routes related to transfer records.
func registerTrackerRoutes(rg *gin.RouterGroup, trackerService portssvc.TrackerSvcFacade) {
	h := newTrackerHandler(trackerService)

	records := rg.Group("/records")
	{
		records.GET("", h.listRecords)
		records.POST("", h.createRecord)
		records.PUT("", h.bulkSaveRecords)
		records.GET("/export", h.exportRecords)
		records.POST("/email-preview", h.previewEmail)
		records.GET("/:orderNumber/completion-email", h.previewCompletionEmail)
		records.POST("/:orderNumber/completion-email", h.sendCompletionEmail)
	}
}

// listRecords godoc
// @Summary List transfer records
// @Description Retrieves the tracked transfer records, filtered by the query parameters. Archived records are hidden unless showArchived is set.
// @Tags records
// @Produce json
// @Param status query []string false "Status filter (repeatable)"
// @Param incorrectStore query string false "Substring match on the in-correct store"
// @Param fitmentStore query string false "Substring match on the fitment store"
// @Param dateFrom query string false "Range start (YYYY-MM-DD), active only with dateTo"
// @Param dateTo query string false "Range end (YYYY-MM-DD), active only with dateFrom"
// @Param q query string false "Free-text search across all fields"
// @Param showArchived query bool false "Include archived records"
// @Success 200 {array} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Security BearerAuth
// @Router /records [get]
func (h *trackerHandler) listRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var query dto.ListRecordsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for ListRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + bindingErrorMessage(err)})
		return
	}

	records, err := h.trackerService.ListRecords(c.Request.Context(), query.ToCriteria())
	if err != nil {
		logger.Error("Failed to list records from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordResponse(records))
}

// createRecord godoc
// @Summary Log a new transfer request
// @Description Creates a new transfer record, running the active duplicate policy. Optionally auto-sends the credit-note email to Accounts when requested by eComm.
// @Tags records
// @Accept json
// @Produce json
// @Param record body dto.CreateRecordRequest true "Record details"
// @Success 201 {object} dto.CreateRecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Duplicate record"
// @Failure 500 {object} map[string]string "Failed to create record"
// @Security BearerAuth
// @Router /records [post]
func (h *trackerHandler) createRecord(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecord", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindingErrorMessage(err)})
		return
	}

	actingUser, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("order_number", req.OrderNumber))
	logger.Info("Received request to create record")

	result, err := h.trackerService.CreateRecord(c.Request.Context(), req, actingUser)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate record")
			c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Order '%s' is already tracked", req.OrderNumber)})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating record", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create record in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create record"})
		}
		return
	}

	logger.Info("Record created successfully", slog.Bool("email_sent", result.EmailSent))
	c.JSON(http.StatusCreated, dto.ToCreateRecordResponse(result))
}

// bulkSaveRecords godoc
// @Summary Save bulk edits
// @Description Overwrites the whole record collection from an inline-edit grid. Rows are saved as-is; only audit fields are re-stamped.
// @Tags records
// @Accept json
// @Produce json
// @Param records body dto.BulkSaveRequest true "Full edited collection"
// @Success 200 {array} dto.RecordResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save records"
// @Security BearerAuth
// @Router /records [put]
func (h *trackerHandler) bulkSaveRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.BulkSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BulkSaveRecords", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	actingUser, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	records := make([]domain.TransferRecord, len(req.Records))
	for i, payload := range req.Records {
		records[i] = payload.ToDomainRecord()
	}

	logger.Info("Received bulk save", slog.Int("count", len(records)))

	saved, err := h.trackerService.ReplaceAll(c.Request.Context(), records, actingUser)
	if err != nil {
		logger.Error("Failed to save records in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save records"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListRecordResponse(saved))
}

// exportRecords godoc
// @Summary Export the collection as CSV
// @Description Downloads the byte-exact flat CSV representation of the full record collection.
// @Tags records
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} map[string]string "Failed to export records"
// @Security BearerAuth
// @Router /records/export [get]
func (h *trackerHandler) exportRecords(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	data, err := h.trackerService.ExportCSV(c.Request.Context())
	if err != nil {
		logger.Error("Failed to export records", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export records"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders_tracker.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// previewEmail godoc
// @Summary Preview a credit-note email
// @Description Renders the selected scenario template with the given form values without persisting anything.
// @Tags records
// @Accept json
// @Produce json
// @Param preview body dto.EmailPreviewRequest true "Template and form values"
// @Success 200 {object} dto.EmailPreview
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /records/email-preview [post]
func (h *trackerHandler) previewEmail(c *gin.Context) {
	var req dto.EmailPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, h.trackerService.PreviewNewEntryEmail(req))
}

// previewCompletionEmail godoc
// @Summary Preview the completion email
// @Description Renders the completion email for the most recently created record matching the order number.
// @Tags records
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} dto.EmailPreview
// @Failure 404 {object} map[string]string "No record for order"
// @Failure 500 {object} map[string]string "Failed to render preview"
// @Security BearerAuth
// @Router /records/{orderNumber}/completion-email [get]
func (h *trackerHandler) previewCompletionEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderNumber := c.Param("orderNumber")

	preview, err := h.trackerService.CompletionEmailPreview(c.Request.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No record for completion email preview", slog.String("order_number", orderNumber))
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No record for order '%s'", orderNumber)})
		} else {
			logger.Error("Failed to render completion email preview", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render preview"})
		}
		return
	}

	c.JSON(http.StatusOK, preview)
}

// sendCompletionEmail godoc
// @Summary Send the completion email
// @Description Sends the completion notice to the eCommerce team for the last record matching the order number, then stamps that record's emailSentAt.
// @Tags records
// @Produce json
// @Param orderNumber path string true "Order number"
// @Success 200 {object} dto.CompletionEmailResult
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No record for order"
// @Failure 502 {object} map[string]string "Delivery failed"
// @Failure 500 {object} map[string]string "Failed to send completion email"
// @Security BearerAuth
// @Router /records/{orderNumber}/completion-email [post]
func (h *trackerHandler) sendCompletionEmail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderNumber := c.Param("orderNumber")

	actingUser, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("order_number", orderNumber))
	logger.Info("Received request to send completion email")

	result, err := h.trackerService.SendCompletionEmail(c.Request.Context(), orderNumber, actingUser)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No record for completion email")
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No record for order '%s'", orderNumber)})
		} else if errors.Is(err, apperrors.ErrDelivery) {
			logger.Error("Completion email delivery failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to send completion email", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send completion email"})
		}
		return
	}

	logger.Info("Completion email sent")
	c.JSON(http.StatusOK, result)
}

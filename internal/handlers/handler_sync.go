package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/bjtmarts/transfer_tracker_app/internal/core/ports/services"
	"github.com/bjtmarts/transfer_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// syncHandler handles HTTP requests related to remote replication.
type syncHandler struct {
	syncService portssvc.SyncSvcFacade
}

// newSyncHandler creates a new syncHandler.
func newSyncHandler(ss portssvc.SyncSvcFacade) *syncHandler {
	return &syncHandler{
		syncService: ss,
	}
}

// registerSyncRoutes registers routes related to remote sync.
func registerSyncRoutes(rg *gin.RouterGroup, syncService portssvc.SyncSvcFacade) {
	h := newSyncHandler(syncService)

	sync := rg.Group("/sync")
	{
		sync.POST("/push", h.pushToRemote)
	}
}

// pushToRemote godoc
// @Summary Push the collection to the remote repository
// @Description Commits the current CSV snapshot to the configured GitHub repository. A remote failure is reported in the result, never as a request failure; the local store stays the source of truth.
// @Tags sync
// @Produce json
// @Success 200 {object} dto.SyncPushResult
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to read local records"
// @Security BearerAuth
// @Router /sync/push [post]
func (h *syncHandler) pushToRemote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actingUser, ok := middleware.GetActingUserFromContext(c)
	if !ok {
		logger.Error("Acting user not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.syncService.PushToRemote(c.Request.Context(), actingUser)
	if err != nil {
		logger.Error("Failed to push to remote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read local records"})
		return
	}

	if !result.Committed {
		logger.Warn("Remote push not committed", slog.String("message", result.Message))
	} else {
		logger.Info("Remote push committed", slog.String("sha", result.SHA))
	}
	c.JSON(http.StatusOK, result)
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/raffleworks/raffle-coordinator/internal/announcer"
	"github.com/raffleworks/raffle-coordinator/internal/api/middleware"
	"github.com/raffleworks/raffle-coordinator/internal/domain"
	"github.com/raffleworks/raffle-coordinator/internal/engine"
	"github.com/raffleworks/raffle-coordinator/internal/executor"
	"github.com/raffleworks/raffle-coordinator/internal/identity"
	"github.com/raffleworks/raffle-coordinator/internal/ledger"
	"github.com/raffleworks/raffle-coordinator/internal/logger"
	"github.com/raffleworks/raffle-coordinator/internal/store"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SubmitDraw admits a draw request into the queue
	// POST /api/v1/draws
	SubmitDraw(c *gin.Context)

	// GetQueue reports the queue length
	// GET /api/v1/queue
	GetQueue(c *gin.Context)

	// GetVerification retrieves a verification record by result ID
	// GET /api/v1/verifications/:id?format=text
	GetVerification(c *gin.Context)

	// GetUsage reports randomness credential usage
	// GET /api/v1/usage
	GetUsage(c *gin.Context)

	// CreateLink stores an identity link and re-renders affected announcements
	// POST /api/v1/links
	CreateLink(c *gin.Context)

	// ListLinks returns every identity link, or the external identities
	// linked to ?community_id
	// GET /api/v1/links
	ListLinks(c *gin.Context)

	// DeleteLink removes an identity link
	// DELETE /api/v1/links/:external_id
	DeleteLink(c *gin.Context)

	// RerenderAnnouncement republishes one announcement's mention content
	// POST /api/v1/announcements/:id/rerender
	RerenderAnnouncement(c *gin.Context)

	// WipeVerifications removes every verification record
	// DELETE /api/v1/admin/verifications
	WipeVerifications(c *gin.Context)

	// WipeLedger clears the called-raffle ledger
	// DELETE /api/v1/admin/ledger
	WipeLedger(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor      executor.Executor
	engine        engine.Engine
	verifications store.VerificationStore
	linker        identity.Linker
	ledger        ledger.Ledger
	announcer     announcer.Announcer
	usage         func() domain.CredentialUsage
}

// NewHandler creates a new REST API handler
func NewHandler(
	exec executor.Executor,
	drawEngine engine.Engine,
	verifications store.VerificationStore,
	linker identity.Linker,
	calledLedger ledger.Ledger,
	announcerService announcer.Announcer,
	usage func() domain.CredentialUsage,
) Handler {
	return &handler{
		executor:      exec,
		engine:        drawEngine,
		verifications: verifications,
		linker:        linker,
		ledger:        calledLedger,
		announcer:     announcerService,
		usage:         usage,
	}
}

// SubmitDraw admits a draw request and returns its queue position. The draw
// itself runs on the sequential executor; outcomes are delivered over the
// messaging transport, not this response.
func (h *handler) SubmitDraw(c *gin.Context) {
	var body DrawRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if body.WinnerCount == 0 {
		body.WinnerCount = 1
	}
	if body.WinnerCount < 1 {
		respondValidationError(c, "winner_count must be at least 1")
		return
	}
	if body.TotalSlots != nil && *body.TotalSlots < 1 {
		respondValidationError(c, "total_slots must be at least 1")
		return
	}

	operator := middleware.IsOperator(c)
	if body.ReRoll && !operator {
		respondForbidden(c, "Re-rolls require operator privileges")
		return
	}

	req := &domain.RaffleRequest{
		SourceURL:     body.SourceURL,
		TotalSlots:    body.TotalSlots,
		WinnerCount:   body.WinnerCount,
		Requester:     middleware.AuthSubject(c),
		RequesterName: body.RequesterName,
		Operator:      body.ReRoll && operator,
	}
	if req.RequesterName == "" {
		req.RequesterName = req.Requester
	}

	position, err := h.executor.Enqueue(func(ctx context.Context) {
		if _, err := h.engine.Process(ctx, req); err != nil {
			logger.Warn("draw request failed",
				zap.Error(err),
				zap.String("source_url", req.SourceURL))
		}
	})
	if err != nil {
		if errors.Is(err, executor.ErrQueueFull) || errors.Is(err, executor.ErrExecutorClosed) {
			respondUnavailable(c, "Draw queue is not accepting requests", err.Error())
			return
		}
		respondInternalError(c, err, "Failed to enqueue draw request")
		return
	}

	c.JSON(http.StatusAccepted, DrawAccepted{
		Position:    position,
		QueueLength: h.executor.Len(),
	})
}

// GetQueue reports the number of queued and in-flight draw requests
func (h *handler) GetQueue(c *gin.Context) {
	c.JSON(http.StatusOK, QueueStatus{Length: h.executor.Len()})
}

// GetVerification retrieves a verification record. With format=text the
// response is the rendered verification affordance instead of JSON.
func (h *handler) GetVerification(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Result ID is required")
		return
	}

	record, err := h.verifications.GetVerification(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			respondNotFound(c, "Verification record not found")
			return
		}
		respondInternalError(c, err, "Failed to load verification record",
			zap.String("result_id", id))
		return
	}

	if c.Query("format") == "text" {
		c.String(http.StatusOK, h.announcer.VerificationText(record))
		return
	}

	response := VerificationResponse{
		ID:             record.ID,
		Verification:   record.Verification,
		Signature:      record.Signature,
		CompletionTime: record.CompletionTime,
		TotalSlots:     record.TotalSlots,
		RequesterName:  record.RequesterName,
	}
	// Winner numbers are stored as a JSON array; decode failures leave the
	// field empty rather than failing the whole lookup
	if err := json.Unmarshal(record.WinnerNumbers, &response.WinnerNumbers); err != nil {
		logger.Warn("failed to decode winner numbers",
			zap.Error(err),
			zap.String("result_id", id))
	}

	c.JSON(http.StatusOK, response)
}

// GetUsage reports advisory randomness credential usage
func (h *handler) GetUsage(c *gin.Context) {
	c.JSON(http.StatusOK, h.usage())
}

// CreateLink stores an identity link and re-renders every announcement
// mentioning the external identity
func (h *handler) CreateLink(c *gin.Context) {
	var body LinkRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	linkedBy := middleware.AuthSubject(c)
	if linkedBy == "" {
		linkedBy = "apikey"
	}

	updated, err := h.linker.LinkIdentity(c.Request.Context(), body.ExternalID, body.CommunityID, linkedBy)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidParameters) {
			respondValidationError(c, err.Error())
			return
		}
		respondInternalError(c, err, "Failed to store identity link",
			zap.String("external_id", body.ExternalID))
		return
	}

	c.JSON(http.StatusCreated, LinkResponse{
		ExternalID:           body.ExternalID,
		CommunityID:          body.CommunityID,
		UpdatedAnnouncements: updated,
	})
}

// ListLinks returns every stored identity link. With ?community_id it
// returns the reverse lookup instead.
func (h *handler) ListLinks(c *gin.Context) {
	if communityID := c.Query("community_id"); communityID != "" {
		externalIDs, err := h.linker.IdentitiesFor(c.Request.Context(), communityID)
		if err != nil {
			respondInternalError(c, err, "Failed to look up linked identities")
			return
		}
		c.JSON(http.StatusOK, ReverseLinkList{CommunityID: communityID, ExternalIDs: externalIDs})
		return
	}

	links, err := h.linker.ListLinks(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to list identity links")
		return
	}
	c.JSON(http.StatusOK, LinkList{Links: links})
}

// DeleteLink removes an identity link
func (h *handler) DeleteLink(c *gin.Context) {
	externalID := c.Param("external_id")
	if externalID == "" {
		respondBadRequest(c, "External ID is required")
		return
	}

	existed, err := h.linker.UnlinkIdentity(c.Request.Context(), externalID)
	if err != nil {
		respondInternalError(c, err, "Failed to delete identity link",
			zap.String("external_id", externalID))
		return
	}
	if !existed {
		respondNotFound(c, "Identity link not found")
		return
	}

	c.Status(http.StatusNoContent)
}

// RerenderAnnouncement republishes one announcement's mention content from
// its stored winner mapping
func (h *handler) RerenderAnnouncement(c *gin.Context) {
	messageID := c.Param("id")
	if messageID == "" {
		respondBadRequest(c, "Message ID is required")
		return
	}

	if err := h.linker.RerenderAnnouncement(c.Request.Context(), messageID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			respondNotFound(c, "Announcement not found")
			return
		}
		respondInternalError(c, err, "Failed to re-render announcement",
			zap.String("message_id", messageID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message_id": messageID})
}

// WipeVerifications removes every verification record
func (h *handler) WipeVerifications(c *gin.Context) {
	removed, err := h.verifications.WipeVerifications(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to wipe verification records")
		return
	}
	c.JSON(http.StatusOK, WipeResponse{Removed: removed})
}

// WipeLedger clears the called-raffle ledger
func (h *handler) WipeLedger(c *gin.Context) {
	removed, err := h.ledger.Wipe()
	if err != nil {
		respondInternalError(c, err, "Failed to wipe called ledger")
		return
	}
	c.JSON(http.StatusOK, WipeResponse{Removed: int64(removed)})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"queue":  h.executor.Len(),
	})
}

package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devfolio-app/portfolio-backend/internal/contact"
	"github.com/devfolio-app/portfolio-backend/internal/contact/domain"
	"github.com/devfolio-app/portfolio-backend/internal/contact/repository"
	"github.com/devfolio-app/portfolio-backend/internal/contact/service"
)

const sentMessage = "Thanks! Your message has been sent."

type Handler struct {
	upstream  *service.UpstreamClient // nil when no upstream is configured
	repo      *repository.SubmissionRepo
	limiter   *contact.IPLimiter
	dupWindow time.Duration
}

func New(upstream *service.UpstreamClient, repo *repository.SubmissionRepo, limiter *contact.IPLimiter, dupWindow time.Duration) *Handler {
	return &Handler{
		upstream:  upstream,
		repo:      repo,
		limiter:   limiter,
		dupWindow: dupWindow,
	}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.submit)
}

type submitReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Website string `json:"website"`
}

func (h *Handler) submit(c *gin.Context) {
	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	// A filled honeypot means a bot. Reply with a convincing success and do
	// nothing else: no upstream call, no storage, no rate-limit consumption.
	if req.Website != "" {
		log.Printf("[contact] honeypot tripped, dropping submission")
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": sentMessage})
		return
	}

	sub := domain.Submission{
		ID:         uuid.New().String(),
		Name:       req.Name,
		Email:      req.Email,
		Subject:    req.Subject,
		Message:    req.Message,
		ReceivedAt: time.Now().UTC(),
	}

	if fieldErrs := contact.Validate(sub); len(fieldErrs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":     false,
			"error":  "validation failed",
			"errors": fieldErrs,
		})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "too many requests, try again later"})
		return
	}

	if h.repo != nil {
		err := h.repo.Record(c.Request.Context(), sub, h.dupWindow)
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			c.JSON(http.StatusTooManyRequests, gin.H{"ok": false, "error": "this message was already sent"})
			return
		}
		if err != nil {
			// Storage is best-effort; delivery still proceeds.
			log.Printf("[contact] record submission: %v", err)
		}
	}

	if h.upstream == nil {
		log.Printf("[contact] no upstream configured, submission %s accepted locally", sub.ID)
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": sentMessage, "id": sub.ID})
		return
	}

	result, err := h.upstream.Send(c.Request.Context(), sub)
	if err != nil {
		// Nothing was delivered, so a retry must not hit the duplicate
		// marker.
		h.forget(c, sub)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "message could not be delivered, try again later"})
		return
	}

	if result.OK {
		msg := result.Message
		if msg == "" {
			msg = sentMessage
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "message": msg, "id": sub.ID})
		return
	}

	h.forget(c, sub)

	body := gin.H{"ok": false, "error": result.Message}
	if result.Message == "" {
		body["error"] = "message could not be delivered"
	}
	if len(result.FieldErrors) > 0 {
		body["errors"] = result.FieldErrors
	}
	c.JSON(result.StatusCode, body)
}

func (h *Handler) forget(c *gin.Context, sub domain.Submission) {
	if h.repo == nil {
		return
	}
	if err := h.repo.Forget(c.Request.Context(), sub); err != nil {
		log.Printf("[contact] release submission %s: %v", sub.ID, err)
	}
}

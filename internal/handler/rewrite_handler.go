package handler

import (
	"errors"
	"log"
	"net/http"

	"rescribe/internal/middleware"
	"rescribe/internal/repository"
	"rescribe/internal/service"
	"rescribe/pkg/llm"

	"github.com/gin-gonic/gin"
)

type RewriteHandler struct {
	svc      *service.RewriteService
	userRepo *repository.UserRepository
}

func NewRewriteHandler(svc *service.RewriteService, userRepo *repository.UserRepository) *RewriteHandler {
	return &RewriteHandler{svc: svc, userRepo: userRepo}
}

// respondRewriteError maps orchestrator errors onto HTTP statuses. Provider
// failures surface the upstream detail as a gateway error.
func (h *RewriteHandler) respondRewriteError(c *gin.Context, err error) {
	var provErr *llm.ProviderError
	var transient *llm.TransientError
	switch {
	case errors.Is(err, service.ErrEmptyInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, llm.ErrNoAPIKey):
		c.JSON(http.StatusBadRequest, gin.H{"error": "no API key configured for this provider; set one via /api/set-keys"})
	case errors.Is(err, llm.ErrUnknownProvider):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrInsufficientCredits):
		h.respondInsufficientCredits(c)
	case errors.Is(err, repository.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.As(err, &provErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": provErr.Error()})
	case errors.As(err, &transient):
		c.JSON(http.StatusBadGateway, gin.H{"error": transient.Error()})
	default:
		log.Printf("[rewrite] internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "rewrite failed"})
	}
}

func (h *RewriteHandler) respondInsufficientCredits(c *gin.Context) {
	body := gin.H{"error": "insufficient credits"}
	if id := middleware.GetUserID(c); id != 0 {
		if u, err := h.userRepo.GetByID(id); err == nil {
			body["credits"] = u.Credits
		}
	}
	c.JSON(http.StatusPaymentRequired, body)
}

func (h *RewriteHandler) userID(c *gin.Context) *uint {
	if id := middleware.GetUserID(c); id != 0 {
		return &id
	}
	return nil
}

func (h *RewriteHandler) Rewrite(c *gin.Context) {
	var req service.RewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Generate(c.Request.Context(), h.userID(c), middleware.KeyScope(c), req)
	if err != nil {
		h.respondRewriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *RewriteHandler) ReRewrite(c *gin.Context) {
	var ov service.ReRewriteOverrides
	if err := c.ShouldBindJSON(&ov); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.ReRewrite(c.Request.Context(), middleware.KeyScope(c), c.Param("jobId"), ov)
	if err != nil {
		h.respondRewriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type analyzeRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *RewriteHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.svc.Analyze(c.Request.Context(), middleware.KeyScope(c), req.Text)
	if err != nil {
		h.respondRewriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

type chatRequest struct {
	Message        string `json:"message" binding:"required"`
	Provider       string `json:"provider"`
	InputText      string `json:"inputText"`
	StyleText      string `json:"styleText"`
	ContentMixText string `json:"contentMixText"`
	OutputText     string `json:"outputText"`
}

func (h *RewriteHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := h.svc.Chat(c.Request.Context(), middleware.KeyScope(c), req.Provider, req.Message,
		req.InputText, req.StyleText, req.ContentMixText, req.OutputText)
	if err != nil {
		h.respondRewriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"response": reply})
}

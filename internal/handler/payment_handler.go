package handler

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"rescribe/config"
	"rescribe/internal/domain"
	"rescribe/internal/middleware"
	"rescribe/internal/models"
	"rescribe/internal/presets"
	"rescribe/internal/repository"
	"rescribe/pkg/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cfg      *config.Config
	provider payment.Provider
	userRepo *repository.UserRepository
}

func NewPaymentHandler(cfg *config.Config, provider payment.Provider, userRepo *repository.UserRepository) *PaymentHandler {
	return &PaymentHandler{cfg: cfg, provider: provider, userRepo: userRepo}
}

// Pricing lists the purchasable credit packages.
func (h *PaymentHandler) Pricing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tiers": presets.Tiers()})
}

type createIntentRequest struct {
	TierID string `json:"tierId" binding:"required"`
}

func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req createIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tier, ok := presets.TierByID(req.TierID)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown pricing tier"})
		return
	}
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	intentReq := payment.IntentRequest{
		AmountCents: tier.PriceUSD * 100,
		Currency:    "usd",
		Description: tier.Name,
		Metadata: map[string]string{
			"tier_id": tier.ID,
			"user_id": strconv.FormatUint(uint64(userID), 10),
			"credits": strconv.FormatInt(tier.Credits, 10),
		},
	}
	if u.StripeCustomerID != nil {
		intentReq.CustomerID = *u.StripeCustomerID
	}

	intent, err := h.provider.CreateIntent(c.Request.Context(), intentReq)
	if err != nil {
		var apiErr *payment.APIError
		if errors.As(err, &apiErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": apiErr.Error()})
			return
		}
		log.Printf("[payment] create intent failed: user=%d err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clientSecret": intent.ClientSecret,
		"intentId":     intent.ID,
		"credits":      tier.Credits,
	})
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string            `json:"id"`
			Amount   int64             `json:"amount"`
			Status   string            `json:"status"`
			Metadata map[string]string `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// Webhook applies settled payments to user balances. Crediting is
// idempotent, so Stripe's redelivery of the same event is harmless.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	secret := h.cfg.Stripe.WebhookSecret
	if secret == "" || subtle.ConstantTimeCompare([]byte(c.GetHeader("X-Webhook-Secret")), []byte(secret)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read body"})
		return
	}
	var event webhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid event payload"})
		return
	}
	if event.Type != "payment_intent.succeeded" {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	obj := event.Data.Object
	userID, err1 := strconv.ParseUint(obj.Metadata["user_id"], 10, 64)
	credits, err2 := strconv.ParseInt(obj.Metadata["credits"], 10, 64)
	if obj.ID == "" || err1 != nil || err2 != nil || credits <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "event missing payment metadata"})
		return
	}

	p := &models.Payment{
		StripePaymentIntentID: obj.ID,
		UserID:                uint(userID),
		Credits:               credits,
		AmountCents:           obj.Amount,
		Status:                domain.PaymentSucceeded,
	}
	if err := h.userRepo.CreditFromPayment(p); err != nil {
		if errors.Is(err, repository.ErrDuplicatePayment) {
			c.JSON(http.StatusOK, gin.H{"received": true, "duplicate": true})
			return
		}
		log.Printf("[payment] credit failed: intent=%s err=%v", obj.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not apply payment"})
		return
	}
	log.Printf("[payment] credited %d credits to user %d (%s)", credits, userID, obj.ID)
	c.JSON(http.StatusOK, gin.H{"received": true})
}

package handler

import (
	"net/http"

	"rescribe/internal/middleware"
	"rescribe/pkg/keystore"

	"github.com/gin-gonic/gin"
)

type KeysHandler struct {
	keys keystore.Store
}

func NewKeysHandler(keys keystore.Store) *KeysHandler {
	return &KeysHandler{keys: keys}
}

type setKeysRequest struct {
	OpenAI     string `json:"openai"`
	Anthropic  string `json:"anthropic"`
	DeepSeek   string `json:"deepseek"`
	Perplexity string `json:"perplexity"`
	GPTZero    string `json:"gptzero"`
}

// SetKeys stores caller-supplied provider keys for the session scope. Keys
// override the server-side defaults until they expire.
func (h *KeysHandler) SetKeys(c *gin.Context) {
	var req setKeysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	keys := keystore.Keys{
		"openai":     req.OpenAI,
		"anthropic":  req.Anthropic,
		"deepseek":   req.DeepSeek,
		"perplexity": req.Perplexity,
		"gptzero":    req.GPTZero,
	}
	if err := h.keys.Set(c.Request.Context(), middleware.KeyScope(c), keys); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store keys"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "keys updated"})
}

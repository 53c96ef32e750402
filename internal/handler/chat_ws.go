package handler

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"rescribe/config"
	"rescribe/internal/auth"
	"rescribe/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	chatWriteWait = 10 * time.Second
	chatReadWait  = 5 * time.Minute
)

var chatUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type wsChatMessage struct {
	Message        string `json:"message"`
	Provider       string `json:"provider"`
	InputText      string `json:"inputText"`
	StyleText      string `json:"styleText"`
	ContentMixText string `json:"contentMixText"`
	OutputText     string `json:"outputText"`
}

type wsChatReply struct {
	Response string `json:"response,omitempty"`
	Error    string `json:"error,omitempty"`
}

// UpgradeChatWS upgrades to WebSocket for the workbench assistant. Auth is
// optional and passed as a token query param; each inbound frame is one chat
// turn answered with one reply frame.
func UpgradeChatWS(cfg *config.JWTConfig, svc *service.RewriteService) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := "anon"
		if token := c.Query("token"); token != "" {
			claims, err := auth.ParseAccessToken(cfg, token)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
				return
			}
			scope = "user:" + strconv.FormatUint(uint64(claims.UserID), 10)
		}

		conn, err := chatUpgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Printf("[ws] upgrade failed: %v", err)
			return
		}
		defer conn.Close()

		for {
			conn.SetReadDeadline(time.Now().Add(chatReadWait))
			var msg wsChatMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			reply, err := svc.Chat(c.Request.Context(), scope, msg.Provider, msg.Message,
				msg.InputText, msg.StyleText, msg.ContentMixText, msg.OutputText)

			conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
			if err != nil {
				if werr := conn.WriteJSON(wsChatReply{Error: err.Error()}); werr != nil {
					return
				}
				continue
			}
			if werr := conn.WriteJSON(wsChatReply{Response: reply}); werr != nil {
				return
			}
		}
	}
}

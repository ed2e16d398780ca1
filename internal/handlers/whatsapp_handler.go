package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bemviver/clinic-scheduler/internal/config"
	"github.com/bemviver/clinic-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type WhatsAppHandler struct {
	cfg     *config.Config
	confirm *booking.ConfirmInbound
	logger  zerolog.Logger
}

func NewWhatsAppHandler(
	cfg *config.Config,
	confirm *booking.ConfirmInbound,
	logger zerolog.Logger,
) *WhatsAppHandler {
	return &WhatsAppHandler{
		cfg:     cfg,
		confirm: confirm,
		logger:  logger,
	}
}

// ======================================================
// PAYLOAD (estrutura da Meta)
// ======================================================

type webhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []inboundMessage `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

type inboundMessage struct {
	From string `json:"from"`
	Type string `json:"type"`
	Text struct {
		Body string `json:"body"`
	} `json:"text"`
}

// ======================================================
// VERIFY (handshake GET)
// ======================================================

// GET /api/whatsapp/webhook — handshake de verificação da Meta
func (h *WhatsAppHandler) Verify(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && challenge != "" {
		if token == h.cfg.WhatsAppVerifyToken {
			c.String(http.StatusOK, challenge)
			return
		}
		c.JSON(http.StatusForbidden, gin.H{"message": "Verify token mismatch"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ======================================================
// RECEIVE (mensagens e status POST)
// ======================================================

// POST /api/whatsapp/webhook — sempre responde 200 {received:true};
// qualquer outra coisa faz o provedor reentregar o evento.
func (h *WhatsAppHandler) Receive(c *gin.Context) {
	var payload webhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn().Err(err).Msg("whatsapp webhook: unparseable body")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.From == "" || msg.Type != "text" {
					continue
				}
				h.confirm.Execute(c.Request.Context(), booking.ConfirmInboundInput{
					From: msg.From,
					Body: msg.Text.Body,
				})
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/bemviver/clinic-scheduler/internal/httperr"
	"github.com/bemviver/clinic-scheduler/internal/httpresp"
	"github.com/bemviver/clinic-scheduler/internal/usecase/booking"
	"github.com/bemviver/clinic-scheduler/internal/whatsapp"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	list *booking.ListRecent
	wa   *whatsapp.Client
}

func NewAdminHandler(list *booking.ListRecent, wa *whatsapp.Client) *AdminHandler {
	return &AdminHandler{
		list: list,
		wa:   wa,
	}
}

// ======================================================
// APPOINTMENTS (listagem)
// ======================================================

// GET /api/appointments — atrás de Basic Auth
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

// ======================================================
// WHATSAPP TEST (operacional)
// ======================================================

// GET /api/whatsapp/test?to=5511999999999&text=... — envia uma mensagem
// de verificação; mode=ping só confere se o envio está configurado.
func (h *AdminHandler) WhatsAppTest(c *gin.Context) {
	mode := strings.ToLower(c.Query("mode"))
	to := strings.TrimSpace(c.Query("to"))
	text := strings.TrimSpace(c.DefaultQuery("text", "Teste WhatsApp (prod)"))

	if mode != "ping" && to == "" {
		httperr.BadRequest(c, "missing_to", "Informe o parâmetro to (somente dígitos, ex.: 5511999999999).")
		return
	}

	if !h.wa.Configured() {
		httperr.Internal(c, "whatsapp_not_configured", "Variáveis da WhatsApp Cloud API ausentes.")
		return
	}

	if mode == "ping" {
		result, err := h.wa.Ping(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusOK, gin.H{"ok": false, "result": result, "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
		return
	}

	result, err := h.wa.SendText(c.Request.Context(), "+"+to, text)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"result": result, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": result})
}

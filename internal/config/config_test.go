package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, 8, cfg.BusinessStartHour)
	assert.Equal(t, 18, cfg.BusinessEndHour)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.Equal(t, "55", cfg.DefaultCountryCode)
	assert.Equal(t, "pt_BR", cfg.WhatsAppTemplateLang)
	assert.Equal(t, "admin", cfg.AdminUser)
	assert.False(t, cfg.WhatsAppConfigured())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("BUSINESS_START_HOUR", "9")
	t.Setenv("SLOT_MINUTES", "not-a-number")
	t.Setenv("WHATSAPP_TOKEN", "tok")
	t.Setenv("WHATSAPP_PHONE_NUMBER_ID", "123")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 9, cfg.BusinessStartHour)
	// valor inválido cai no default
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.True(t, cfg.WhatsAppConfigured())
}

package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/bemviver/clinic-scheduler/internal/config"
	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
	"github.com/bemviver/clinic-scheduler/internal/metrics"
	"github.com/bemviver/clinic-scheduler/internal/whatsapp"
)

// confirmationMarker é a linha anexada às observações quando o cliente
// responde "1" no WhatsApp.
const confirmationMarker = "[CONFIRMADO VIA WHATSAPP]"

// TextSender é o que a confirmação precisa do WhatsApp. *whatsapp.Client
// satisfaz; testes usam um fake.
type TextSender interface {
	SendText(ctx context.Context, to, text string) (whatsapp.Result, error)
}

// ======================================================
// INPUT
// ======================================================

type ConfirmInboundInput struct {
	From string // dígitos E.164 sem "+", ex.: "5511999999999"
	Body string // texto recebido
}

// ======================================================
// USE CASE
// ======================================================

// ConfirmInbound transita um agendamento de pendente para confirmado a
// partir de uma resposta "1" no WhatsApp. Qualquer falha interna é logada
// e engolida: o webhook precisa responder 200 sempre, senão o provedor
// reenvia a entrega.
type ConfirmInbound struct {
	repo   schedule.Repository
	cfg    *config.Config
	sender TextSender
	logger zerolog.Logger
}

func NewConfirmInbound(
	repo schedule.Repository,
	cfg *config.Config,
	sender TextSender,
	logger zerolog.Logger,
) *ConfirmInbound {
	return &ConfirmInbound{
		repo:   repo,
		cfg:    cfg,
		sender: sender,
		logger: logger,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmInbound) Execute(ctx context.Context, in ConfirmInboundInput) {
	if strings.TrimSpace(in.Body) != "1" || in.From == "" {
		return
	}

	phoneE164 := "+" + in.From

	ap, err := uc.repo.LatestAppointmentByPhone(ctx, phoneE164)
	if err != nil || ap == nil {
		// Sem agendamento para o número: orienta a usar o site e não
		// muda nada no banco.
		uc.reply(ctx, phoneE164,
			"Não encontrei um agendamento recente para este número. "+
				"Se for um novo agendamento, por favor agende pelo site.")
		return
	}

	marker := fmt.Sprintf("%s %s", confirmationMarker, time.Now().UTC().Format(time.RFC3339))
	if ap.Notes != "" {
		ap.Notes = ap.Notes + "\n" + marker
	} else {
		ap.Notes = marker
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		uc.logger.Error().Err(err).Uint("appointment_id", ap.ID).
			Msg("failed to persist whatsapp confirmation")
		return
	}

	metrics.IncConfirmation()

	hhmm := schedule.NormalizeHHMM(ap.Time)
	uc.reply(ctx, phoneE164, fmt.Sprintf(
		"Obrigado! Seu agendamento para %s às %s foi confirmado.",
		ap.Date, hhmm,
	))

	if owner := uc.cfg.WhatsAppOwnerNumber; owner != "" {
		uc.reply(ctx, owner, fmt.Sprintf(
			"Cliente confirmou: %s — %s %s (%s)",
			ap.Name, ap.Date, hhmm, phoneE164,
		))
	}
}

func (uc *ConfirmInbound) reply(ctx context.Context, to, text string) {
	if uc.sender == nil {
		return
	}
	if _, err := uc.sender.SendText(ctx, to, text); err != nil {
		uc.logger.Warn().Err(err).Str("to", to).Msg("whatsapp reply failed")
	}
}

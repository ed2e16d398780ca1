package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bemviver/clinic-scheduler/internal/metrics"
	"github.com/bemviver/clinic-scheduler/internal/models"
	"github.com/bemviver/clinic-scheduler/internal/whatsapp"
)

// Tempo máximo de cada chamada externa; o resultado é descartado depois
// de logado.
const dispatchTimeout = 10 * time.Second

const EventAppointmentCreated = "appointment.created"

type Event struct {
	Type        string
	Appointment models.Appointment
}

type webhookEnvelope struct {
	Event   string             `json:"event"`
	Payload models.Appointment `json:"payload"`
}

// Dispatcher entrega notificações em background: webhook genérico e
// mensagem de WhatsApp, cada um independente e nunca fatal. A fila tem
// buffer fixo; cheia, o evento é descartado com log — a API não espera.
type Dispatcher struct {
	webhookURL string
	wa         *whatsapp.Client
	httpClient *http.Client
	logger     zerolog.Logger

	queue chan Event
	wg    sync.WaitGroup
}

func NewDispatcher(webhookURL string, wa *whatsapp.Client, logger zerolog.Logger) *Dispatcher {
	d := &Dispatcher{
		webhookURL: webhookURL,
		wa:         wa,
		httpClient: &http.Client{Timeout: dispatchTimeout},
		logger:     logger,
		queue:      make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.logger.Warn().Str("event", ev.Type).Msg("notify queue full, dropping event")
	}
}

// Close para o worker depois de drenar a fila. Usado em shutdown e testes.
func (d *Dispatcher) Close() {
	close(d.queue)
	d.wg.Wait()
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		d.deliver(ev)
	}
}

func (d *Dispatcher) deliver(ev Event) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := d.sendWebhook(ctx, ev); err != nil {
			metrics.IncNotification("webhook", "error")
			d.logger.Warn().Err(err).Msg("webhook notify failed")
			return
		}
		metrics.IncNotification("webhook", "ok")
	}()

	go func() {
		defer wg.Done()
		if err := d.sendWhatsApp(ctx, ev); err != nil {
			metrics.IncNotification("whatsapp", "error")
			d.logger.Warn().Err(err).Msg("whatsapp notify failed")
			return
		}
		metrics.IncNotification("whatsapp", "ok")
	}()

	wg.Wait()
}

func (d *Dispatcher) sendWebhook(ctx context.Context, ev Event) error {
	if d.webhookURL == "" {
		return nil
	}

	body, err := json.Marshal(webhookEnvelope{Event: ev.Type, Payload: ev.Appointment})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

func (d *Dispatcher) sendWhatsApp(ctx context.Context, ev Event) error {
	if d.wa == nil || !d.wa.Configured() {
		return nil
	}

	ap := ev.Appointment
	hhmm := ap.Time
	if len(hhmm) > 5 {
		hhmm = hhmm[:5]
	}

	msg := fmt.Sprintf(
		"Olá %s! Seu agendamento na BemViver para %s às %s foi recebido. Responda 1 para confirmar.",
		ap.Name, ap.Date, hhmm,
	)

	_, err := d.wa.SendText(ctx, ap.Phone, msg)
	return err
}

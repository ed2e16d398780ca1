package booking

import (
	"context"
	"regexp"

	"github.com/bemviver/clinic-scheduler/internal/cache"
	"github.com/bemviver/clinic-scheduler/internal/config"
	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
	"github.com/bemviver/clinic-scheduler/internal/httperr"
	"github.com/bemviver/clinic-scheduler/internal/metrics"
	"github.com/bemviver/clinic-scheduler/internal/models"
	"github.com/bemviver/clinic-scheduler/internal/notify"
	"github.com/bemviver/clinic-scheduler/internal/phone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	Name    string
	Phone   string
	Service string
	Date    string // YYYY-MM-DD
	Time    string // HH:mm
	Notes   string
}

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Validate reúne todos os campos reprovados em vez de parar no primeiro.
func (in CreateAppointmentInput) Validate() []httperr.FieldIssue {
	var issues []httperr.FieldIssue

	if len(in.Name) < 2 {
		issues = append(issues, httperr.FieldIssue{
			Field: "name", Message: "Informe o nome completo.",
		})
	}
	if len(phone.Digits(in.Phone)) < 8 {
		issues = append(issues, httperr.FieldIssue{
			Field: "phone", Message: "Telefone inválido.",
		})
	}
	if len(in.Service) < 2 {
		issues = append(issues, httperr.FieldIssue{
			Field: "service", Message: "Selecione um serviço.",
		})
	}
	if !dateRe.MatchString(in.Date) {
		issues = append(issues, httperr.FieldIssue{
			Field: "date", Message: "Data deve estar no formato YYYY-MM-DD.",
		})
	}
	if !timeRe.MatchString(in.Time) {
		issues = append(issues, httperr.FieldIssue{
			Field: "time", Message: "Horário deve estar no formato HH:MM.",
		})
	}
	if len(in.Notes) > 500 {
		issues = append(issues, httperr.FieldIssue{
			Field: "notes", Message: "Observações devem ter no máximo 500 caracteres.",
		})
	}

	return issues
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo   schedule.Repository
	cfg    *config.Config
	notify *notify.Dispatcher
	cache  *cache.AvailabilityCache
}

func NewCreateAppointment(
	repo schedule.Repository,
	cfg *config.Config,
	dispatcher *notify.Dispatcher,
	avCache *cache.AvailabilityCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:   repo,
		cfg:    cfg,
		notify: dispatcher,
		cache:  avCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// Validação
	// --------------------------------------------------
	if issues := in.Validate(); len(issues) > 0 {
		return nil, httperr.ValidationError{Issues: issues}
	}

	// --------------------------------------------------
	// Normalização (telefone E.164, horário HH:MM:SS)
	// --------------------------------------------------
	e164 := phone.NormalizeE164(in.Phone, uc.cfg.DefaultCountryCode)
	timeSQL := in.Time + ":00"

	// --------------------------------------------------
	// Conflito: mesmo serviço, data e horário
	// --------------------------------------------------
	taken, err := uc.repo.FindConflict(ctx, in.Service, in.Date, timeSQL)
	if err != nil {
		return nil, err
	}
	if taken {
		metrics.IncBookingConflict()
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// Persistência (índice único fecha a corrida restante)
	// --------------------------------------------------
	ap := &models.Appointment{
		Name:    in.Name,
		Phone:   e164,
		Service: in.Service,
		Date:    in.Date,
		Time:    timeSQL,
		Notes:   in.Notes,
		Source:  "landing",
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			metrics.IncBookingConflict()
		}
		return nil, err
	}

	metrics.IncBookingCreated()
	uc.cache.Invalidate(ctx)

	// Fire-and-forget: a resposta não espera webhook nem WhatsApp.
	uc.notify.Dispatch(notify.Event{
		Type:        notify.EventAppointmentCreated,
		Appointment: *ap,
	})

	return ap, nil
}

package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bemviver/clinic-scheduler/internal/cache"
	"github.com/bemviver/clinic-scheduler/internal/config"
	"github.com/bemviver/clinic-scheduler/internal/httperr"
	"github.com/bemviver/clinic-scheduler/internal/models"
	"github.com/bemviver/clinic-scheduler/internal/notify"
)

func testConfig() *config.Config {
	return &config.Config{
		Timezone:           "America/Sao_Paulo",
		BusinessStartHour:  8,
		BusinessEndHour:    18,
		SlotMinutes:        30,
		DefaultCountryCode: "55",
	}
}

func newCreateUC(t *testing.T, repo *fakeRepo) *CreateAppointment {
	t.Helper()
	logger := zerolog.Nop()
	dispatcher := notify.NewDispatcher("", nil, logger)
	t.Cleanup(dispatcher.Close)
	return NewCreateAppointment(repo, testConfig(), dispatcher, cache.New("", logger))
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		Name:    "Maria Silva",
		Phone:   "(11) 99999-9999",
		Service: "psicologia",
		Date:    "2025-10-13",
		Time:    "09:00",
		Notes:   "primeira consulta",
	}
}

func issueFields(issues []httperr.FieldIssue) []string {
	fields := make([]string, 0, len(issues))
	for _, i := range issues {
		fields = append(fields, i.Field)
	}
	return fields
}

func TestCreateAppointment(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(t, repo)

		ap, err := uc.Execute(context.Background(), validInput())
		require.NoError(t, err)
		require.NotNil(t, ap)

		assert.NotZero(t, ap.ID)
		assert.Equal(t, "+5511999999999", ap.Phone)
		assert.Equal(t, "09:00:00", ap.Time)
		assert.Equal(t, "landing", ap.Source)
		assert.Equal(t, "primeira consulta", ap.Notes)
		assert.Len(t, repo.appointments, 1)
	})

	t.Run("ValidationCollectsAllFields", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(t, repo)

		_, err := uc.Execute(context.Background(), CreateAppointmentInput{
			Name:    "A",
			Phone:   "123",
			Service: "x",
			Date:    "13/10/2025",
			Time:    "9h",
		})

		var ve httperr.ValidationError
		require.ErrorAs(t, err, &ve)
		fields := issueFields(ve.Issues)
		assert.ElementsMatch(t, []string{"name", "phone", "service", "date", "time"}, fields)
		assert.Empty(t, repo.appointments)
	})

	t.Run("NotesTooLong", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(t, repo)

		in := validInput()
		in.Notes = string(make([]byte, 501))

		_, err := uc.Execute(context.Background(), in)

		var ve httperr.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, []string{"notes"}, issueFields(ve.Issues))
	})

	t.Run("ConflictSameServiceDateTime", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(t, repo)

		_, err := uc.Execute(context.Background(), validInput())
		require.NoError(t, err)

		in := validInput()
		in.Name = "Outro Paciente"
		in.Phone = "(11) 98888-8888"
		_, err = uc.Execute(context.Background(), in)

		assert.True(t, httperr.IsBusiness(err, "slot_taken"))
		assert.Len(t, repo.appointments, 1, "conflito não pode criar registro duplicado")
	})

	t.Run("SameSlotOtherServiceAllowed", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(t, repo)

		_, err := uc.Execute(context.Background(), validInput())
		require.NoError(t, err)

		in := validInput()
		in.Service = "consulta_geral"
		_, err = uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.Len(t, repo.appointments, 2)
	})

	t.Run("DuplicateKeyOnInsertMapsToConflict", func(t *testing.T) {
		// corrida perdida: o pré-check passou mas o índice único barrou
		repo := newFakeRepo()
		repo.createErr = httperr.ErrBusiness("slot_taken")
		uc := newCreateUC(t, repo)

		_, err := uc.Execute(context.Background(), validInput())
		assert.True(t, httperr.IsBusiness(err, "slot_taken"))
	})

	t.Run("PersistenceErrorSurfaces", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createErr = errors.New("connection refused")
		uc := newCreateUC(t, repo)

		_, err := uc.Execute(context.Background(), validInput())
		require.Error(t, err)
		assert.False(t, httperr.IsBusiness(err, "slot_taken"))

		var ve httperr.ValidationError
		assert.False(t, errors.As(err, &ve))
	})

	t.Run("PhoneAlreadyNormalizedKept", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newCreateUC(t, repo)

		in := validInput()
		in.Phone = "+5511999999999"
		ap, err := uc.Execute(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, "+5511999999999", ap.Phone)
	})
}

func TestCreateAppointmentDoesNotBlockOnNotifications(t *testing.T) {
	// O dispatcher sem webhook nem WhatsApp configurados descarta tudo;
	// a criação responde sucesso mesmo assim.
	repo := newFakeRepo()
	uc := newCreateUC(t, repo)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	assert.IsType(t, &models.Appointment{}, ap)
}

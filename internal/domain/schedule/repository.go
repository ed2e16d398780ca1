package schedule

import (
	"context"

	"github.com/bemviver/clinic-scheduler/internal/models"
)

type Repository interface {
	// -------- Janela de disponibilidade --------
	ListAppointmentsInRange(
		ctx context.Context,
		from string,
		to string,
	) ([]models.Appointment, error)

	ListBlocksInRange(
		ctx context.Context,
		from string,
		to string,
	) ([]models.AvailabilityBlock, error)

	// -------- Agendamento (create / conflito) --------
	FindConflict(
		ctx context.Context,
		service string,
		date string,
		timeOfDay string,
	) (bool, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Confirmação via WhatsApp --------
	LatestAppointmentByPhone(
		ctx context.Context,
		phone string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listagem admin --------
	ListRecentAppointments(
		ctx context.Context,
		limit int,
	) ([]models.Appointment, error)
}

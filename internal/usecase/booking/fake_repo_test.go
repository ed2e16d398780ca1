package booking

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/bemviver/clinic-scheduler/internal/models"
)

// fakeRepo implementa schedule.Repository em memória para os testes de
// use case.
type fakeRepo struct {
	appointments []models.Appointment
	blocks       []models.AvailabilityBlock

	nextID    uint
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func slotKey(service, date, timeOfDay string) string {
	return fmt.Sprintf("%s|%s|%s", service, date, timeOfDay)
}

func (r *fakeRepo) ListAppointmentsInRange(_ context.Context, from, to string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if ap.Date >= from && ap.Date <= to {
			out = append(out, ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBlocksInRange(_ context.Context, from, to string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range r.blocks {
		if b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) FindConflict(_ context.Context, service, date, timeOfDay string) (bool, error) {
	key := slotKey(service, date, timeOfDay)
	for _, ap := range r.appointments {
		if slotKey(ap.Service, ap.Date, ap.Time) == key {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *fakeRepo) LatestAppointmentByPhone(_ context.Context, phone string) (*models.Appointment, error) {
	// a lista cresce por ordem de criação; o mais recente vem do fim
	for i := len(r.appointments) - 1; i >= 0; i-- {
		if r.appointments[i].Phone == phone {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListRecentAppointments(_ context.Context, limit int) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0, len(r.appointments))
	for i := len(r.appointments) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.appointments[i])
	}
	return out, nil
}

package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
	"github.com/bemviver/clinic-scheduler/internal/httperr"
	"github.com/bemviver/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Janela de disponibilidade
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsInRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("date", "time", "service").
		Where("date >= ? AND date <= ?", from, to).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListBlocksInRange(
	ctx context.Context,
	from string,
	to string,
) ([]models.AvailabilityBlock, error) {

	var blocks []models.AvailabilityBlock
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Find(&blocks).Error; err != nil {
		return nil, err
	}

	return blocks, nil
}

// --------------------------------------------------
// Agendamento (create / conflito)
// --------------------------------------------------

func (r *AppointmentGormRepository) FindConflict(
	ctx context.Context,
	service string,
	date string,
	timeOfDay string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"service = ? AND date = ? AND time = ?",
			service, date, timeOfDay,
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateAppointment insere o agendamento. O índice único sobre
// (service, date, time) fecha a corrida do check-then-insert: inserts
// duplicados voltam como slot_taken.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}
	return nil
}

// --------------------------------------------------
// Confirmação via WhatsApp
// --------------------------------------------------

func (r *AppointmentGormRepository) LatestAppointmentByPhone(
	ctx context.Context,
	phone string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		Order("created_at DESC").
		First(&ap).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Listagem admin
// --------------------------------------------------

func (r *AppointmentGormRepository) ListRecentAppointments(
	ctx context.Context,
	limit int,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ schedule.Repository = (*AppointmentGormRepository)(nil)

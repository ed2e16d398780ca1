package booking

import (
	"context"

	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
	"github.com/bemviver/clinic-scheduler/internal/models"
)

// Listagem do painel admin: os 100 agendamentos mais recentes.
const recentLimit = 100

type ListRecent struct {
	repo schedule.Repository
}

func NewListRecent(repo schedule.Repository) *ListRecent {
	return &ListRecent{repo: repo}
}

func (uc *ListRecent) Execute(ctx context.Context) ([]models.Appointment, error) {
	return uc.repo.ListRecentAppointments(ctx, recentLimit)
}

package booking

import (
	"context"
	"time"

	"github.com/bemviver/clinic-scheduler/internal/cache"
	"github.com/bemviver/clinic-scheduler/internal/config"
	"github.com/bemviver/clinic-scheduler/internal/domain/schedule"
	"github.com/bemviver/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type GetAvailabilityInput struct {
	From    string // "2006-01-02"; vazio = hoje no fuso da clínica
	Days    int    // quantidade de dias úteis; <=0 = 14
	Service string // vazio = todos os serviços
}

const defaultWindowDays = 14

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  schedule.Repository
	cfg   *config.Config
	cache *cache.AvailabilityCache
}

func NewGetAvailability(
	repo schedule.Repository,
	cfg *config.Config,
	avCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cfg:   cfg,
		cache: avCache,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in GetAvailabilityInput,
) ([]schedule.DayAvailability, error) {

	loc := timezone.Location(uc.cfg.Timezone)

	from := in.From
	if from == "" {
		from = time.Now().In(loc).Format("2006-01-02")
	}

	count := in.Days
	if count <= 0 {
		count = defaultWindowDays
	}

	key := cache.Key(in.Service, from, count)
	if days, ok := uc.cache.Get(ctx, key); ok {
		return days, nil
	}

	start, err := time.ParseInLocation("2006-01-02", from, loc)
	if err != nil {
		return nil, err
	}

	days := schedule.BusinessDays(start, count)
	if len(days) == 0 {
		return []schedule.DayAvailability{}, nil
	}
	to := days[len(days)-1]

	appts, err := uc.repo.ListAppointmentsInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	blocks, err := uc.repo.ListBlocksInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	apptSlots := make([]schedule.AppointmentSlot, 0, len(appts))
	for _, a := range appts {
		apptSlots = append(apptSlots, schedule.AppointmentSlot{
			Date:    a.Date,
			Time:    a.Time,
			Service: a.Service,
		})
	}

	blockSlots := make([]schedule.BlockSlot, 0, len(blocks))
	for _, b := range blocks {
		blockSlots = append(blockSlots, schedule.BlockSlot{
			Date:    b.Date,
			Time:    b.Time,
			Service: b.Service,
		})
	}

	occ := schedule.BuildOccupancy(apptSlots, blockSlots, in.Service)
	slots := schedule.GenerateTimeSlots(
		uc.cfg.BusinessStartHour,
		uc.cfg.BusinessEndHour,
		uc.cfg.SlotMinutes,
	)

	result := schedule.AssembleAvailability(days, slots, occ)

	uc.cache.Set(ctx, key, result)

	return result, nil
}

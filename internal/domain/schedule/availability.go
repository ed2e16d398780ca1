package schedule

// AssembleAvailability cruza a lista de dias úteis, a grade canônica de
// slots e o índice de ocupação. Um slot só fica disponível se o dia não
// está bloqueado, o horário não está agendado e não há bloqueio pontual.
func AssembleAvailability(days []string, slots []string, occ Occupancy) []DayAvailability {
	result := make([]DayAvailability, 0, len(days))

	for _, date := range days {
		_, blockedDay := occ.DayBlocked[date]

		times := make([]Slot, 0, len(slots))
		for _, t := range slots {
			_, occupied := occ.Booked[date][t]
			_, slotBlocked := occ.SlotBlocked[date][t]
			times = append(times, Slot{
				Time:      t,
				Available: !blockedDay && !occupied && !slotBlocked,
			})
		}

		result = append(result, DayAvailability{
			Date:    date,
			Blocked: blockedDay,
			Times:   times,
		})
	}

	return result
}

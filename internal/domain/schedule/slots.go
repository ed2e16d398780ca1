package schedule

import "fmt"

// GenerateTimeSlots produz a lista fixa de horários "HH:MM" de um dia de
// atendimento: de startHour até endHour em passos de stepMin. Na última
// hora só entram inícios até o minuto 30, e nenhum slot pode terminar
// depois do fechamento.
func GenerateTimeSlots(startHour, endHour, stepMin int) []string {
	if stepMin <= 0 || startHour >= endHour {
		return nil
	}

	closing := endHour * 60
	var slots []string

	for h := startHour; h < endHour; h++ {
		for m := 0; m < 60; m += stepMin {
			if h == endHour-1 && m > 30 {
				continue
			}
			if h*60+m+stepMin > closing {
				continue
			}
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}

	return slots
}

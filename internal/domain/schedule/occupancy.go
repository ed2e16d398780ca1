package schedule

import "regexp"

// Linhas mínimas que o índice de ocupação precisa do repositório.
// Date sempre "2006-01-02"; Time pode vir com segundos ("15:04:05").

type AppointmentSlot struct {
	Date    string
	Time    string
	Service string
}

type BlockSlot struct {
	Date    string
	Time    *string
	Service *string
}

var hhmmRe = regexp.MustCompile(`^(\d{2}):(\d{2})(?::\d{2})?$`)

// NormalizeHHMM trunca horários armazenados para precisão de minuto.
// Valores fora do padrão voltam inalterados.
func NormalizeHHMM(t string) string {
	m := hhmmRe.FindStringSubmatch(t)
	if m == nil {
		return t
	}
	return m[1] + ":" + m[2]
}

// Occupancy indexa, por data, o que já está comprometido na janela:
// horários agendados (filtrados por serviço), dias inteiramente
// bloqueados e horários bloqueados pontualmente.
type Occupancy struct {
	Booked      map[string]map[string]struct{}
	DayBlocked  map[string]struct{}
	SlotBlocked map[string]map[string]struct{}
}

// BuildOccupancy monta o índice. service vazio significa "todos": todo
// agendamento conta e todo bloqueio vale; com filtro, agendamentos de
// outros serviços são ignorados e bloqueios presos a outro serviço não
// afetam a consulta.
func BuildOccupancy(appts []AppointmentSlot, blocks []BlockSlot, service string) Occupancy {
	occ := Occupancy{
		Booked:      make(map[string]map[string]struct{}),
		DayBlocked:  make(map[string]struct{}),
		SlotBlocked: make(map[string]map[string]struct{}),
	}

	for _, a := range appts {
		if service != "" && a.Service != service {
			continue
		}
		if occ.Booked[a.Date] == nil {
			occ.Booked[a.Date] = make(map[string]struct{})
		}
		occ.Booked[a.Date][NormalizeHHMM(a.Time)] = struct{}{}
	}

	for _, b := range blocks {
		if b.Service != nil && service != "" && *b.Service != service {
			continue
		}
		if b.Time == nil {
			occ.DayBlocked[b.Date] = struct{}{}
			continue
		}
		if occ.SlotBlocked[b.Date] == nil {
			occ.SlotBlocked[b.Date] = make(map[string]struct{})
		}
		occ.SlotBlocked[b.Date][NormalizeHHMM(*b.Time)] = struct{}{}
	}

	return occ
}

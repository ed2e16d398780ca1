package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findSlot(t *testing.T, day DayAvailability, hhmm string) Slot {
	t.Helper()
	for _, s := range day.Times {
		if s.Time == hhmm {
			return s
		}
	}
	t.Fatalf("slot %s not found on %s", hhmm, day.Date)
	return Slot{}
}

func TestAssembleAvailability(t *testing.T) {
	slots := GenerateTimeSlots(8, 18, 30)

	t.Run("EmptyWindowAllAvailable", func(t *testing.T) {
		// Cenário: janela de 3 dias úteis sem agendamentos nem bloqueios
		days := []string{"2025-10-13", "2025-10-14", "2025-10-15"}
		result := AssembleAvailability(days, slots, BuildOccupancy(nil, nil, ""))

		require.Len(t, result, 3)
		for _, day := range result {
			assert.False(t, day.Blocked)
			require.Len(t, day.Times, len(slots))
			for _, s := range day.Times {
				assert.True(t, s.Available)
			}
		}
	})

	t.Run("BookedSlotScopedByService", func(t *testing.T) {
		appts := []AppointmentSlot{
			{Date: "2025-10-13", Time: "09:00:00", Service: "psicologia"},
		}

		forPsico := AssembleAvailability(
			[]string{"2025-10-13"}, slots, BuildOccupancy(appts, nil, "psicologia"))
		assert.False(t, findSlot(t, forPsico[0], "09:00").Available)

		forGeral := AssembleAvailability(
			[]string{"2025-10-13"}, slots, BuildOccupancy(appts, nil, "consulta_geral"))
		assert.True(t, findSlot(t, forGeral[0], "09:00").Available)
	})

	t.Run("DayBlockOverridesEverything", func(t *testing.T) {
		// Bloqueio sem horário marca o dia inteiro, com ou sem agendamentos
		appts := []AppointmentSlot{
			{Date: "2025-10-13", Time: "09:00:00", Service: "psicologia"},
		}
		blocks := []BlockSlot{{Date: "2025-10-13"}}

		result := AssembleAvailability(
			[]string{"2025-10-13"}, slots, BuildOccupancy(appts, blocks, ""))

		require.Len(t, result, 1)
		assert.True(t, result[0].Blocked)
		require.Len(t, result[0].Times, len(slots))
		for _, s := range result[0].Times {
			assert.False(t, s.Available, "slot %s should be unavailable on a blocked day", s.Time)
		}
	})

	t.Run("SlotBlock", func(t *testing.T) {
		blocks := []BlockSlot{{Date: "2025-10-13", Time: strPtr("11:00:00")}}

		result := AssembleAvailability(
			[]string{"2025-10-13"}, slots, BuildOccupancy(nil, blocks, ""))

		assert.False(t, result[0].Blocked)
		assert.False(t, findSlot(t, result[0], "11:00").Available)
		assert.True(t, findSlot(t, result[0], "11:30").Available)
	})

	t.Run("Idempotent", func(t *testing.T) {
		appts := []AppointmentSlot{
			{Date: "2025-10-13", Time: "09:00:00", Service: "psicologia"},
		}
		days := []string{"2025-10-13", "2025-10-14"}

		first := AssembleAvailability(days, slots, BuildOccupancy(appts, nil, ""))
		second := AssembleAvailability(days, slots, BuildOccupancy(appts, nil, ""))
		assert.Equal(t, first, second)
	})
}

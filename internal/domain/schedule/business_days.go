package schedule

import "time"

// maxScanDays limita a varredura de calendário; garante término mesmo com
// uma contagem mal configurada.
const maxScanDays = 60

const isoDate = "2006-01-02"

// BusinessDays caminha a partir de start coletando datas "2006-01-02" de
// segunda a sexta, até juntar count dias ou esgotar a janela de varredura.
func BusinessDays(start time.Time, count int) []string {
	var days []string

	for i := 0; len(days) < count && i < maxScanDays; i++ {
		d := start.AddDate(0, 0, i)
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		days = append(days, d.Format(isoDate))
	}

	return days
}

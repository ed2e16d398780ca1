package schedule

// Slot é um horário do dia com o estado calculado para uma consulta
// específica de data+serviço. Nunca é persistido.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// DayAvailability é a grade de um dia útil dentro da janela consultada.
// Um dia bloqueado ainda devolve a lista completa de slots (todos
// indisponíveis) para o cliente renderizar "sem vagas" de forma uniforme.
type DayAvailability struct {
	Date    string `json:"date"`
	Blocked bool   `json:"blocked"`
	Times   []Slot `json:"times"`
}

package domain

// DailyStat é um balde diário da série de estatísticas: um dia do calendário,
// quantidade de cortes, receita e ticket médio do dia.
type DailyStat struct {
	Date     string  `json:"date"`
	DayName  string  `json:"dayName"`
	Count    int     `json:"count"`
	Revenue  float64 `json:"revenue"`
	AvgPrice float64 `json:"avgPrice"`
}

// ServiceStat agrega os registros de um serviço. O agrupamento é
// case-insensitive mas o nome preserva a grafia da primeira ocorrência.
type ServiceStat struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	Revenue      float64 `json:"revenue"`
	SharePercent float64 `json:"sharePercent"`
}

// StatisticsReport é o resultado completo de uma passada de agregação sobre um
// snapshot de registros. Sempre recalculado, nunca persistido.
type StatisticsReport struct {
	TotalRevenue float64        `json:"totalRevenue"`
	TotalCount   int            `json:"totalCount"`
	UniqueDays   int            `json:"uniqueDays"`
	AverageDaily float64        `json:"averageDaily"`
	DailySeries  []*DailyStat   `json:"dailySeries"`
	Services     []*ServiceStat `json:"services"`
	TopService   *ServiceStat   `json:"topService,omitempty"`
}

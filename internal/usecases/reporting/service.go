package reporting

import (
	"sort"
	"strings"
	"time"

	"github.com/barberia/barber-manager-api/internal/config"
	"github.com/barberia/barber-manager-api/internal/domain"
	"github.com/barberia/barber-manager-api/pkg/utils"
)

// DefaultWindowDays é o tamanho padrão da série diária.
const DefaultWindowDays = 7

var dayNames = [7]string{"Dom", "Lun", "Mar", "Mié", "Jue", "Vie", "Sáb"}

// Reporter calcula estatísticas sobre um snapshot de registros. O serviço não
// guarda estado entre chamadas: cada chamada recebe o conjunto completo e
// devolve um resultado novo, recalculado.
type Reporter interface {
	Statistics(records []*domain.Haircut, ref time.Time) *domain.StatisticsReport
	DailySeries(records []*domain.Haircut, ref time.Time, window int) []*domain.DailyStat
	ServiceBreakdown(records []*domain.Haircut) []*domain.ServiceStat
	SummaryForDate(records []*domain.Haircut, date time.Time) *domain.DailySummary
}

type Service struct {
	windowDays int
}

func NewService(cfg *config.Config) Reporter {
	windowDays := cfg.Statistics.WindowDays
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	return &Service{windowDays: windowDays}
}

// Statistics produz o relatório completo: totais, série diária da janela
// configurada e a distribuição por serviço.
func (s *Service) Statistics(records []*domain.Haircut, ref time.Time) *domain.StatisticsReport {
	report := &domain.StatisticsReport{
		TotalCount:  len(records),
		DailySeries: s.DailySeries(records, ref, s.windowDays),
		Services:    s.ServiceBreakdown(records),
	}

	uniqueDays := make(map[string]bool)
	for _, record := range records {
		report.TotalRevenue += record.Price
		uniqueDays[record.DateOnly()] = true
	}
	report.UniqueDays = len(uniqueDays)

	// Média por dia com movimento; nunca divide por zero.
	if report.UniqueDays > 0 {
		report.AverageDaily = utils.RoundWithTwoDecimalPlace(report.TotalRevenue / float64(report.UniqueDays))
	}

	if len(report.Services) > 0 {
		report.TopService = report.Services[0]
	}

	return report
}

// DailySeries produz exatamente window baldes, um por dia de calendário, para
// os dias que terminam em ref (inclusive), em ordem cronológica. Dias sem
// registros entram zerados; a série nunca é esparsa.
func (s *Service) DailySeries(records []*domain.Haircut, ref time.Time, window int) []*domain.DailyStat {
	if window <= 0 {
		window = s.windowDays
	}

	byDay := make(map[string]*domain.DailyStat)
	for _, record := range records {
		key := record.DateOnly()
		stat, ok := byDay[key]
		if !ok {
			stat = &domain.DailyStat{Date: key}
			byDay[key] = stat
		}
		stat.Count++
		stat.Revenue += record.Price
	}

	series := make([]*domain.DailyStat, 0, window)
	for i := window - 1; i >= 0; i-- {
		day := ref.AddDate(0, 0, -i)
		key := day.Format(time.DateOnly)

		stat := &domain.DailyStat{Date: key}
		if found, ok := byDay[key]; ok {
			stat.Count = found.Count
			stat.Revenue = found.Revenue
		}
		stat.DayName = dayNames[day.Weekday()]
		if stat.Count > 0 {
			stat.AvgPrice = utils.RoundWithTwoDecimalPlace(stat.Revenue / float64(stat.Count))
		}

		series = append(series, stat)
	}

	return series
}

// ServiceBreakdown agrupa os registros por serviço, sem diferenciar
// maiúsculas, preservando a grafia da primeira ocorrência de cada grupo. A
// ordenação é por quantidade decrescente; empates mantêm a ordem da primeira
// ocorrência.
func (s *Service) ServiceBreakdown(records []*domain.Haircut) []*domain.ServiceStat {
	byService := make(map[string]*domain.ServiceStat)
	ordered := make([]*domain.ServiceStat, 0)

	for _, record := range records {
		key := strings.ToLower(record.ServiceName)
		stat, ok := byService[key]
		if !ok {
			stat = &domain.ServiceStat{Name: record.ServiceName}
			byService[key] = stat
			ordered = append(ordered, stat)
		}
		stat.Count++
		stat.Revenue += record.Price
	}

	totalCount := len(records)
	for _, stat := range ordered {
		if totalCount > 0 {
			stat.SharePercent = utils.RoundWithTwoDecimalPlace(100 * float64(stat.Count) / float64(totalCount))
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Count > ordered[j].Count
	})

	return ordered
}

// SummaryForDate reduz o snapshot ao resumo de um único dia de calendário.
func (s *Service) SummaryForDate(records []*domain.Haircut, date time.Time) *domain.DailySummary {
	summary := &domain.DailySummary{Date: date}
	key := date.Format(time.DateOnly)

	for _, record := range records {
		if record.DateOnly() == key {
			summary.Count++
			summary.Total += record.Price
		}
	}

	return summary
}

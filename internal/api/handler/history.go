package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/barberia/barber-manager-api/internal/usecases/registering"
	"github.com/barberia/barber-manager-api/pkg/apiErrors"
)

// TodaySummary retorna o resumo consolidado do dia corrente
func TodaySummary(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := service.TodaySummary()
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// DailyHistory retorna o histórico agrupado por dia, da data mais recente
// para a mais antiga
func DailyHistory(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		history, err := service.DailyHistory()
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(history)
	}
}

// HistoryByDate retorna as vendas de um dia específico
func HistoryByDate(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := httprouter.ParamsFromContext(r.Context()).ByName("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data não fornecida", nil)
			return
		}

		haircuts, err := service.GetByDate(date)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(haircuts)
	}
}

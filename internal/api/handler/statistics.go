package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/barberia/barber-manager-api/internal/usecases/registering"
	"github.com/barberia/barber-manager-api/internal/usecases/reporting"
	"github.com/barberia/barber-manager-api/pkg/apiErrors"
)

// GetStatistics calcula o painel de estatísticas sobre todas as vendas.
// Aceita ?window= para ajustar o tamanho da série diária e ?ref=YYYY-MM-DD
// para ancorar a janela em outra data.
func GetStatistics(registrar registering.Registrar, reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ref := time.Now()
		if refParam := r.URL.Query().Get("ref"); refParam != "" {
			parsed, err := time.Parse(time.DateOnly, refParam)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data de referência inválida, use YYYY-MM-DD", nil)
				return
			}
			ref = parsed
		}

		haircuts, err := registrar.GetAll()
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		report := reporter.Statistics(haircuts, ref)

		if windowParam := r.URL.Query().Get("window"); windowParam != "" {
			window, err := strconv.Atoi(windowParam)
			if err != nil || window <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Janela inválida, informe um inteiro positivo", nil)
				return
			}
			report.DailySeries = reporter.DailySeries(haircuts, ref, window)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(report)
	}
}

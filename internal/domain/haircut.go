package domain

import (
	"encoding/json"
	"time"
)

// Valores padrão aplicados quando a origem do registro não informa o campo
// (importação em massa nunca traz cliente nem serviço).
const (
	DefaultClientName  = "Sin nombre"
	DefaultServiceName = "Corte"
)

// Haircut representa uma venda registrada: um serviço, um preço e uma data civil.
// Time só é preenchido em registros criados pelo fluxo normal; a importação
// histórica nunca fornece horário.
type Haircut struct {
	ID          string    `json:"id"`
	ClientName  string    `json:"clientName"`
	ServiceName string    `json:"serviceName"`
	Price       float64   `json:"price"`
	Date        time.Time `json:"-"`
	Time        *string   `json:"time,omitempty"`
}

// DateOnly retorna a data civil no formato canônico YYYY-MM-DD.
func (h *Haircut) DateOnly() string {
	return h.Date.Format(time.DateOnly)
}

// MarshalJSON serializa a data civil como YYYY-MM-DD, sem componente de hora
// ou fuso, que é o formato trocado com os clientes da API.
func (h Haircut) MarshalJSON() ([]byte, error) {
	type alias Haircut
	return json.Marshal(struct {
		alias
		Date string `json:"date"`
	}{
		alias: alias(h),
		Date:  h.Date.Format(time.DateOnly),
	})
}

// HaircutCreate é o payload de criação. Date aceita tanto o formato canônico
// YYYY-MM-DD quanto DD/MM/YYYY (formato produzido pela importação).
type HaircutCreate struct {
	ClientName  string  `json:"clientName"`
	ServiceName string  `json:"serviceName"`
	Price       float64 `json:"price"`
	Date        string  `json:"date"`
	Time        *string `json:"time,omitempty"`
}

// HaircutUpdate carrega os campos alteráveis de um registro existente.
type HaircutUpdate struct {
	ID          string   `json:"id"`
	ClientName  *string  `json:"clientName,omitempty"`
	ServiceName *string  `json:"serviceName,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Time        *string  `json:"time,omitempty"`
}

// DailySummary é o resumo de um dia: quantidade de cortes e receita total.
// É uma visão derivada, nunca fonte de verdade.
type DailySummary struct {
	Date  time.Time `json:"-"`
	Count int       `json:"count"`
	Total float64   `json:"total"`
}

// DailyHistoryItem é uma entrada do histórico diário exposto pela API,
// ordenado da data mais recente para a mais antiga.
type DailyHistoryItem struct {
	Date    string   `json:"date"`
	Count   int      `json:"count"`
	Total   float64  `json:"total"`
	Clients []string `json:"clients"`
}

package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/internal/domain"
	"github.com/barberia/barber-manager-api/internal/usecases/registering"
	"github.com/barberia/barber-manager-api/pkg/apiErrors"
)

type UpdatePriceRequest struct {
	Price float64 `json:"price"`
}

type DeleteByDateResponse struct {
	Deleted int64  `json:"deleted"`
	Date    string `json:"date"`
}

// CreateHaircut registra uma nova venda
func CreateHaircut(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.HaircutCreate

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		haircut, err := service.Create(&req)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(haircut)
	}
}

// ListHaircuts retorna todas as vendas registradas. Aceita o filtro opcional
// ?date=YYYY-MM-DD para restringir a um único dia.
func ListHaircuts(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")

		var (
			haircuts []*domain.Haircut
			err      error
		)

		if date != "" {
			haircuts, err = service.GetByDate(date)
		} else {
			haircuts, err = service.GetAll()
		}

		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(haircuts)
	}
}

// GetHaircut retorna uma venda pelo ID
func GetHaircut(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro não fornecido", nil)
			return
		}

		haircut, err := service.GetByID(id)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(haircut)
	}
}

// UpdateHaircut atualiza os campos enviados de uma venda existente
func UpdateHaircut(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro não fornecido", nil)
			return
		}

		var req domain.HaircutUpdate
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		haircut, err := service.Update(&req)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(haircut)
	}
}

// UpdateHaircutPrice atualiza somente o preço de uma venda
func UpdateHaircutPrice(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro não fornecido", nil)
			return
		}

		var req UpdatePriceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		haircut, err := service.UpdatePrice(id, req.Price)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(haircut)
	}
}

// DeleteHaircut remove uma venda pelo ID
func DeleteHaircut(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do registro não fornecido", nil)
			return
		}

		if err := service.Delete(id); err != nil {
			handleRegisterError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteHaircutsByDate remove todas as vendas de um dia informado em ?date=
func DeleteHaircutsByDate(service registering.Registrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")
		if date == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Data não fornecida", nil)
			return
		}

		deleted, err := service.DeleteByDate(date)
		if err != nil {
			handleRegisterError(w, err)
			return
		}

		logrus.WithFields(logrus.Fields{
			"date":    date,
			"deleted": deleted,
		}).Info("Registros removidos por data")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(DeleteByDateResponse{
			Deleted: deleted,
			Date:    date,
		})
	}
}

// handleRegisterError trata erros do caso de uso de registros
func handleRegisterError(w http.ResponseWriter, err error) {
	var regErr *registering.RegisterError
	if errors.As(err, &regErr) {
		var details map[string]any
		if regErr.HaircutID != "" {
			details = map[string]any{"haircut_id": regErr.HaircutID}
		}
		apiErrors.WriteError(w, regErr.Code, regErr.Error(), details)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar registro", nil)
}

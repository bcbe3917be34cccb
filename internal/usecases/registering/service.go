package registering

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/barberia/barber-manager-api/infrastructure/repository"
	"github.com/barberia/barber-manager-api/internal/domain"
	"github.com/barberia/barber-manager-api/pkg/apiErrors"
	"github.com/barberia/barber-manager-api/pkg/utils"
)

// Registrar é o caso de uso de registro de vendas. Também é o colaborador de
// criação consumido pela importação em lote: a mesma validação vale para os
// dois caminhos de entrada.
type Registrar interface {
	Create(item *domain.HaircutCreate) (*domain.Haircut, error)
	GetAll() ([]*domain.Haircut, error)
	GetByID(id string) (*domain.Haircut, error)
	GetByDate(date string) ([]*domain.Haircut, error)
	Update(item *domain.HaircutUpdate) (*domain.Haircut, error)
	UpdatePrice(id string, price float64) (*domain.Haircut, error)
	Delete(id string) error
	DeleteByDate(date string) (int64, error)
	TodaySummary() (*domain.DailySummary, error)
	DailyHistory() ([]*domain.DailyHistoryItem, error)
}

type Service struct {
	repo repository.HaircutRepository
}

func NewService(repo repository.HaircutRepository) Registrar {
	return &Service{repo: repo}
}

// Create valida e persiste um novo registro. A data aceita os dois formatos em
// circulação (YYYY-MM-DD e DD/MM/YYYY); um registro com preço não positivo ou
// data não resolvível nunca chega à persistência.
func (s *Service) Create(item *domain.HaircutCreate) (*domain.Haircut, error) {
	if item.Price <= 0 {
		return nil, NewRegisterError(ErrNonPositivePrice, apiErrors.ErrInvalidRequest, "preço deve ser maior que zero")
	}

	date, err := utils.ParseCivilDate(item.Date)
	if err != nil {
		return nil, NewRegisterError(ErrInvalidDate, apiErrors.ErrInvalidFormat, item.Date)
	}

	clientName := item.ClientName
	if clientName == "" {
		clientName = domain.DefaultClientName
	}

	serviceName := item.ServiceName
	if serviceName == "" {
		serviceName = domain.DefaultServiceName
	}

	haircut := &domain.Haircut{
		ID:          uuid.NewString(),
		ClientName:  clientName,
		ServiceName: serviceName,
		Price:       item.Price,
		Date:        date,
		Time:        item.Time,
	}

	if err := s.repo.Insert(haircut); err != nil {
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"haircut_id": haircut.ID,
		"service":    haircut.ServiceName,
		"date":       haircut.DateOnly(),
	}).Debug("registro: venda criada")

	return haircut, nil
}

func (s *Service) GetAll() ([]*domain.Haircut, error) {
	haircuts, err := s.repo.GetAll()
	if err != nil {
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return haircuts, nil
}

func (s *Service) GetByID(id string) (*domain.Haircut, error) {
	if id == "" {
		return nil, NewRegisterError(ErrIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	haircut, err := s.repo.GetByID(id)
	if err != nil {
		return nil, NewRegisterErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if haircut == nil {
		return nil, NewRegisterErrorWithID(ErrHaircutNotFound, apiErrors.ErrRecordNotFound, id, "")
	}

	return haircut, nil
}

func (s *Service) GetByDate(date string) ([]*domain.Haircut, error) {
	parsed, err := utils.ParseCivilDate(date)
	if err != nil {
		return nil, NewRegisterError(ErrInvalidDate, apiErrors.ErrInvalidFormat, date)
	}

	haircuts, err := s.repo.GetByDate(parsed)
	if err != nil {
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return haircuts, nil
}

func (s *Service) Update(item *domain.HaircutUpdate) (*domain.Haircut, error) {
	haircut, err := s.GetByID(item.ID)
	if err != nil {
		return nil, err
	}

	if item.ClientName != nil {
		haircut.ClientName = *item.ClientName
	}

	if item.ServiceName != nil {
		haircut.ServiceName = *item.ServiceName
	}

	if item.Price != nil {
		if *item.Price <= 0 {
			return nil, NewRegisterErrorWithID(ErrNonPositivePrice, apiErrors.ErrInvalidRequest, item.ID, "")
		}
		haircut.Price = *item.Price
	}

	if item.Date != nil {
		date, err := utils.ParseCivilDate(*item.Date)
		if err != nil {
			return nil, NewRegisterErrorWithID(ErrInvalidDate, apiErrors.ErrInvalidFormat, item.ID, *item.Date)
		}
		haircut.Date = date
	}

	if item.Time != nil {
		haircut.Time = item.Time
	}

	if err := s.repo.Update(haircut); err != nil {
		return nil, NewRegisterErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, item.ID, err.Error())
	}

	return haircut, nil
}

func (s *Service) UpdatePrice(id string, price float64) (*domain.Haircut, error) {
	if price <= 0 {
		return nil, NewRegisterErrorWithID(ErrNonPositivePrice, apiErrors.ErrInvalidRequest, id, "")
	}

	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	if err := s.repo.UpdatePrice(id, price); err != nil {
		return nil, NewRegisterErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	return s.GetByID(id)
}

func (s *Service) Delete(id string) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		return NewRegisterErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}

	return nil
}

// DeleteByDate remove todos os registros de um dia e retorna quantos foram
// removidos.
func (s *Service) DeleteByDate(date string) (int64, error) {
	parsed, err := utils.ParseCivilDate(date)
	if err != nil {
		return 0, NewRegisterError(ErrInvalidDate, apiErrors.ErrInvalidFormat, date)
	}

	count, err := s.repo.DeleteByDate(parsed)
	if err != nil {
		return 0, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logrus.WithFields(logrus.Fields{
		"date":  parsed.Format(time.DateOnly),
		"count": count,
	}).Info("registro: vendas removidas por data")

	return count, nil
}

func (s *Service) TodaySummary() (*domain.DailySummary, error) {
	summary, err := s.repo.SummaryByDate(utils.Today())
	if err != nil {
		return nil, NewRegisterError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return summary, nil
}

// DailyHistory produz o histórico por dia, da data mais recente para a mais
// antiga, com a lista de clientes atendidos em cada dia.
func (s *Service) DailyHistory() ([]*domain.DailyHistoryItem, error) {
	haircuts, err := s.GetAll()
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*domain.DailyHistoryItem)
	ordered := make([]*domain.DailyHistoryItem, 0)

	// GetAll devolve em ordem de data decrescente; a primeira ocorrência de
	// cada data define a posição do item no histórico.
	for _, haircut := range haircuts {
		key := haircut.DateOnly()
		item, ok := byDate[key]
		if !ok {
			item = &domain.DailyHistoryItem{Date: key, Clients: make([]string, 0)}
			byDate[key] = item
			ordered = append(ordered, item)
		}
		item.Count++
		item.Total += haircut.Price
		item.Clients = append(item.Clients, haircut.ClientName)
	}

	return ordered, nil
}

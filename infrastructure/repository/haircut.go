package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/barberia/barber-manager-api/infrastructure/database/postgres"
	"github.com/barberia/barber-manager-api/internal/domain"
)

const (
	haircutsTable = "haircuts h"
	haircutCols   = "h.id, h.client_name, h.service_name, h.price, h.date, h.time"
)

type HaircutRepository interface {
	Insert(haircut *domain.Haircut) error
	GetAll() ([]*domain.Haircut, error)
	GetByID(id string) (*domain.Haircut, error)
	GetByDate(date time.Time) ([]*domain.Haircut, error)
	Update(haircut *domain.Haircut) error
	UpdatePrice(id string, price float64) error
	Delete(id string) error
	DeleteByDate(date time.Time) (int64, error)
	SummaryByDate(date time.Time) (*domain.DailySummary, error)
}

type haircutRepository struct {
	db postgres.Queryer
}

func NewHaircutRepository(conn *postgres.Connection) HaircutRepository {
	return &haircutRepository{
		db: conn,
	}
}

func (r *haircutRepository) Insert(haircut *domain.Haircut) error {
	query, args, err := squirrel.
		Insert("haircuts").
		Columns("id", "client_name", "service_name", "price", "date", "time").
		Values(
			haircut.ID,
			haircut.ClientName,
			haircut.ServiceName,
			haircut.Price,
			haircut.Date.Format(time.DateOnly),
			haircut.Time,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.db.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *haircutRepository) GetAll() ([]*domain.Haircut, error) {
	query, args, err := squirrel.
		Select(haircutCols).
		From(haircutsTable).
		OrderBy("h.date DESC", "h.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryHaircuts(query, args...)
}

func (r *haircutRepository) GetByID(id string) (*domain.Haircut, error) {
	query, args, err := squirrel.
		Select(haircutCols).
		From(haircutsTable).
		Where(squirrel.Eq{"h.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.db.QueryRow(query, args...)
	haircut, err := scanHaircut(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear haircut: %w", err)
	}

	return haircut, nil
}

func (r *haircutRepository) GetByDate(date time.Time) ([]*domain.Haircut, error) {
	query, args, err := squirrel.
		Select(haircutCols).
		From(haircutsTable).
		Where(squirrel.Eq{"h.date": date.Format(time.DateOnly)}).
		OrderBy("h.id DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryHaircuts(query, args...)
}

func (r *haircutRepository) Update(haircut *domain.Haircut) error {
	query, args, err := squirrel.
		Update("haircuts").
		Set("client_name", haircut.ClientName).
		Set("service_name", haircut.ServiceName).
		Set("price", haircut.Price).
		Set("date", haircut.Date.Format(time.DateOnly)).
		Set("time", haircut.Time).
		Where(squirrel.Eq{"id": haircut.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *haircutRepository) UpdatePrice(id string, price float64) error {
	query, args, err := squirrel.
		Update("haircuts").
		Set("price", price).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *haircutRepository) Delete(id string) error {
	query, args, err := squirrel.
		Delete("haircuts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *haircutRepository) DeleteByDate(date time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("haircuts").
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}

// SummaryByDate agrega quantidade e receita de um único dia direto no banco.
func (r *haircutRepository) SummaryByDate(date time.Time) (*domain.DailySummary, error) {
	query, args, err := squirrel.
		Select("COUNT(*)", "COALESCE(SUM(h.price), 0)").
		From(haircutsTable).
		Where(squirrel.Eq{"h.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary := &domain.DailySummary{Date: date}
	row := r.db.QueryRow(query, args...)
	if err := row.Scan(&summary.Count, &summary.Total); err != nil {
		return nil, fmt.Errorf("erro ao escanear resumo diário: %w", err)
	}

	return summary, nil
}

func (r *haircutRepository) queryHaircuts(query string, args ...any) ([]*domain.Haircut, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	haircuts := make([]*domain.Haircut, 0)
	for rows.Next() {
		haircut, err := scanHaircutRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear haircuts: %w", err)
		}
		haircuts = append(haircuts, haircut)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return haircuts, nil
}

func scanHaircut(row *sql.Row) (*domain.Haircut, error) {
	haircut := &domain.Haircut{}
	var dateStr string

	err := row.Scan(
		&haircut.ID,
		&haircut.ClientName,
		&haircut.ServiceName,
		&haircut.Price,
		&dateStr,
		&haircut.Time,
	)
	if err != nil {
		return nil, err
	}

	if haircut.Date, err = time.Parse(time.DateOnly, dateStr); err != nil {
		return nil, err
	}

	return haircut, nil
}

func scanHaircutRows(rows *sql.Rows) (*domain.Haircut, error) {
	haircut := &domain.Haircut{}
	var dateStr string

	err := rows.Scan(
		&haircut.ID,
		&haircut.ClientName,
		&haircut.ServiceName,
		&haircut.Price,
		&dateStr,
		&haircut.Time,
	)
	if err != nil {
		return nil, err
	}

	if haircut.Date, err = time.Parse(time.DateOnly, dateStr); err != nil {
		return nil, err
	}

	return haircut, nil
}

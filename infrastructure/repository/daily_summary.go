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
	dailySummariesTable = "daily_summaries ds"
)

// DailySummaryRepository guarda os snapshots diários materializados pelo
// agendador noturno. Os snapshots são uma visão derivada: podem ser apagados e
// recalculados a qualquer momento a partir da tabela de vendas.
type DailySummaryRepository interface {
	SaveOrUpdate(summary *domain.DailySummary) error
	GetRange(startDate, endDate time.Time) ([]*domain.DailySummary, error)
	DeleteOlderThan(days int) (int64, error)
}

type dailySummaryRepository struct {
	db postgres.Queryer
}

func NewDailySummaryRepository(conn *postgres.Connection) DailySummaryRepository {
	return &dailySummaryRepository{
		db: conn,
	}
}

func (r *dailySummaryRepository) SaveOrUpdate(summary *domain.DailySummary) error {
	query := squirrel.StatementBuilder.
		Insert("daily_summaries").
		Columns("date", "count", "total").
		Values(
			summary.Date.Format(time.DateOnly),
			summary.Count,
			summary.Total,
		).
		Suffix(`
			ON CONFLICT (date) DO UPDATE SET
				count = EXCLUDED.count,
				total = EXCLUDED.total,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.db.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailySummaryRepository) GetRange(startDate, endDate time.Time) ([]*domain.DailySummary, error) {
	query, args, err := squirrel.
		Select("ds.date, ds.count, ds.total").
		From(dailySummariesTable).
		Where(squirrel.GtOrEq{"ds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ds.date": endDate.Format(time.DateOnly)}).
		OrderBy("ds.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.DailySummary, 0)
	for rows.Next() {
		summary := &domain.DailySummary{}
		var dateStr string

		if err := rows.Scan(&dateStr, &summary.Count, &summary.Total); err != nil {
			return nil, fmt.Errorf("erro ao escanear resumo diário: %w", err)
		}

		if summary.Date, err = time.Parse(time.DateOnly, dateStr); err != nil {
			return nil, fmt.Errorf("erro ao interpretar data do resumo: %w", err)
		}

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

func (r *dailySummaryRepository) DeleteOlderThan(days int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -days)

	query, args, err := squirrel.
		Delete("daily_summaries").
		Where(squirrel.Lt{"date": cutoff.Format(time.DateOnly)}).
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

package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const (
	commissionReportTable = "commission_report cr"
)

type CommissionReportRepository interface {
	GetByMonth(month domain.MonthKey) (*domain.CommissionReport, error)
	SaveOrUpdate(report *domain.CommissionReport) error
}

type commissionReportRepository struct {
	conn *postgres.Connection
}

func NewCommissionReportRepository(conn *postgres.Connection) CommissionReportRepository {
	return &commissionReportRepository{
		conn: conn,
	}
}

func (r *commissionReportRepository) GetByMonth(month domain.MonthKey) (*domain.CommissionReport, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"cr.month",
			"cr.total_revenue",
			"cr.commission_percentage",
			"cr.total_minutes",
			"cr.results",
			"cr.generated_at",
		).
		From(commissionReportTable).
		Where(squirrel.Eq{"cr.month": month.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	report := &domain.CommissionReport{}
	var results []byte

	row := r.conn.QueryRow(sqlQuery, args...)
	err = row.Scan(
		&report.Month,
		&report.TotalRevenue,
		&report.CommissionPercentage,
		&report.TotalMinutes,
		&results,
		&report.GeneratedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear relatório de comissão: %w", err)
	}

	if err := json.Unmarshal(results, &report.Results); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resultados do relatório: %w", err)
	}

	return report, nil
}

func (r *commissionReportRepository) SaveOrUpdate(report *domain.CommissionReport) error {
	results, err := json.Marshal(report.Results)
	if err != nil {
		return fmt.Errorf("erro ao codificar resultados do relatório: %w", err)
	}

	query := squirrel.StatementBuilder.
		Insert("commission_report").
		Columns(
			"month",
			"total_revenue",
			"commission_percentage",
			"total_minutes",
			"results",
			"generated_at",
		).
		Values(
			report.Month.String(),
			report.TotalRevenue,
			report.CommissionPercentage,
			report.TotalMinutes,
			results,
			report.GeneratedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	// Comportamento de conflito (upsert): um relatório por mês
	query = query.Suffix(`
		ON CONFLICT (month) DO UPDATE SET
			total_revenue = EXCLUDED.total_revenue,
			commission_percentage = EXCLUDED.commission_percentage,
			total_minutes = EXCLUDED.total_minutes,
			results = EXCLUDED.results,
			generated_at = EXCLUDED.generated_at
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

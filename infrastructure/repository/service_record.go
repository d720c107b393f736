package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const (
	serviceRecordTable = "service_record sr"
)

type ServiceRecordRepository interface {
	ListByMonth(month domain.MonthKey) ([]domain.ServiceRecord, error)
	ListAvailableMonths() ([]string, error)
}

type serviceRecordRepository struct {
	conn *postgres.Connection
}

func NewServiceRecordRepository(conn *postgres.Connection) ServiceRecordRepository {
	return &serviceRecordRepository{
		conn: conn,
	}
}

func (r *serviceRecordRepository) ListByMonth(month domain.MonthKey) ([]domain.ServiceRecord, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"sr.id",
			"sr.barber_id",
			"sr.service_id",
			"sr.quantity",
			"sr.date",
			"sr.month",
			"sr.created_at",
		).
		From(serviceRecordTable).
		Where(squirrel.Eq{"sr.month": month.String()}).
		OrderBy("sr.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ServiceRecord, 0)

	for rows.Next() {
		record := domain.ServiceRecord{}
		err := rows.Scan(
			&record.ID,
			&record.BarberID,
			&record.ServiceID,
			&record.Quantity,
			&record.Date,
			&record.Month,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear atendimento: %w", err)
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// ListAvailableMonths retorna os meses distintos com atendimentos registrados,
// do mais recente para o mais antigo
func (r *serviceRecordRepository) ListAvailableMonths() ([]string, error) {
	sqlQuery, _, err := squirrel.
		Select("DISTINCT sr.month").
		From(serviceRecordTable).
		OrderBy("sr.month DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	months := make([]string, 0)

	for rows.Next() {
		var month string
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}

		months = append(months, month)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return months, nil
}

package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const (
	rotationEventTable = "rotation_event re"
)

type RotationEventRepository interface {
	ListByMonth(month domain.MonthKey) ([]domain.RotationEvent, error)
	Append(event *domain.RotationEvent) error
}

type rotationEventRepository struct {
	conn *postgres.Connection
}

func NewRotationEventRepository(conn *postgres.Connection) RotationEventRepository {
	return &rotationEventRepository{
		conn: conn,
	}
}

func (r *rotationEventRepository) ListByMonth(month domain.MonthKey) ([]domain.RotationEvent, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"re.id",
			"re.barber_id",
			"re.kind",
			"re.count",
			"re.date",
			"re.month",
			"re.created_at",
		).
		From(rotationEventTable).
		Where(squirrel.Eq{"re.month": month.String()}).
		OrderBy("re.created_at ASC").
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

	events := make([]domain.RotationEvent, 0)

	for rows.Next() {
		event := domain.RotationEvent{}
		err := rows.Scan(
			&event.ID,
			&event.BarberID,
			&event.Kind,
			&event.Count,
			&event.Date,
			&event.Month,
			&event.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear evento da lista da vez: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return events, nil
}

// Append grava o evento de forma durável. A chamada só retorna sucesso após o
// commit, garantindo que consultas subsequentes do mesmo chamador observem o
// evento (leitura consistente após escrita).
func (r *rotationEventRepository) Append(event *domain.RotationEvent) error {
	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert("rotation_event").
		Columns(
			"id",
			"barber_id",
			"kind",
			"count",
			"date",
			"month",
		).
		Values(
			event.ID,
			event.BarberID,
			event.Kind,
			event.Count,
			event.Date,
			event.Month.String(),
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

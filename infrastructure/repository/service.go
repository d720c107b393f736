package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const (
	serviceTable = "service s"
)

type ServiceRepository interface {
	ListServices() ([]domain.Service, error)
}

type serviceRepository struct {
	conn *postgres.Connection
}

func NewServiceRepository(conn *postgres.Connection) ServiceRepository {
	return &serviceRepository{
		conn: conn,
	}
}

func (r *serviceRepository) ListServices() ([]domain.Service, error) {
	sqlQuery, args, err := squirrel.
		Select(
			"s.id",
			"s.name",
			"s.duration_minutes",
			"s.price",
			"s.active",
			"s.created_at",
			"s.updated_at",
		).
		From(serviceTable).
		OrderBy("s.name ASC").
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

	services := make([]domain.Service, 0)

	for rows.Next() {
		service := domain.Service{}
		err := rows.Scan(
			&service.ID,
			&service.Name,
			&service.DurationMinutes,
			&service.Price,
			&service.Active,
			&service.CreatedAt,
			&service.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear serviço: %w", err)
		}

		services = append(services, service)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return services, nil
}

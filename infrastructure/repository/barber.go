// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const (
	barberTable = "barber b"
)

type BarberRepository interface {
	ListBarbers(onlyActive bool) ([]domain.Barber, error)
	GetByID(barberID string) (*domain.Barber, error)
}

type barberRepository struct {
	conn *postgres.Connection
}

func NewBarberRepository(conn *postgres.Connection) BarberRepository {
	return &barberRepository{
		conn: conn,
	}
}

func (r *barberRepository) ListBarbers(onlyActive bool) ([]domain.Barber, error) {
	queryBuilder := squirrel.
		Select(
			"b.id",
			"b.name",
			"b.active",
			"b.created_at",
			"b.updated_at",
		).
		From(barberTable).
		OrderBy("b.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"b.active": true})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	barbers := make([]domain.Barber, 0)

	for rows.Next() {
		barber := domain.Barber{}
		err := rows.Scan(
			&barber.ID,
			&barber.Name,
			&barber.Active,
			&barber.CreatedAt,
			&barber.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear barbeiro: %w", err)
		}

		barbers = append(barbers, barber)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return barbers, nil
}

func (r *barberRepository) GetByID(barberID string) (*domain.Barber, error) {
	sqlQuery, args, err := squirrel.
		Select("b.id", "b.name", "b.active", "b.created_at", "b.updated_at").
		From(barberTable).
		Where(squirrel.Eq{"b.id": barberID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	barber := &domain.Barber{}
	row := r.conn.QueryRow(sqlQuery, args...)

	err = row.Scan(
		&barber.ID,
		&barber.Name,
		&barber.Active,
		&barber.CreatedAt,
		&barber.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear barbeiro: %w", err)
	}

	return barber, nil
}

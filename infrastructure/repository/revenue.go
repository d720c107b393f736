package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/barber-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/barber-manager-api/internal/domain"
)

const (
	monthlyRevenueTable = "monthly_revenue mr"
)

// RevenueRepository consulta a receita mensal de assinaturas. A tabela é
// alimentada pela integração de pagamentos, que está fora do escopo da engine.
type RevenueRepository interface {
	GetMonthlyRevenue(month domain.MonthKey) (decimal.Decimal, error)
}

type revenueRepository struct {
	conn *postgres.Connection
}

func NewRevenueRepository(conn *postgres.Connection) RevenueRepository {
	return &revenueRepository{
		conn: conn,
	}
}

func (r *revenueRepository) GetMonthlyRevenue(month domain.MonthKey) (decimal.Decimal, error) {
	sqlQuery, args, err := squirrel.
		Select("mr.total_revenue").
		From(monthlyRevenueTable).
		Where(squirrel.Eq{"mr.month": month.String()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var revenue decimal.Decimal
	row := r.conn.QueryRow(sqlQuery, args...)

	if err := row.Scan(&revenue); err != nil {
		if err == sql.ErrNoRows {
			// Mês sem receita registrada: comissão calculada sobre zero
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("erro ao escanear receita mensal: %w", err)
	}

	return revenue, nil
}

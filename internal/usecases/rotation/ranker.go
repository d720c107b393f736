// Package rotation implementa a lista da vez: o ranking mensal de barbeiros
// que define quem atende o próximo cliente sem horário marcado.
package rotation

import (
	"sort"

	"github.com/vfg2006/barber-manager-api/internal/domain"
)

// TieBreak define o critério de desempate entre barbeiros com a mesma contagem
type TieBreak string

const (
	// TieBreakName desempata por ordem alfabética do nome (padrão)
	TieBreakName TieBreak = "name"
	// TieBreakFewestPasses desempata por menos vezes passadas, depois nome
	TieBreakFewestPasses TieBreak = "fewest_passes"
)

// Options parametriza o cálculo do ranking
type Options struct {
	// CountPassedTurns indica se passar a vez soma uma unidade na contagem
	// mensal do barbeiro. Padrão: verdadeiro.
	CountPassedTurns bool
	TieBreak         TieBreak
}

// DefaultOptions retorna as opções padrão da lista da vez
func DefaultOptions() Options {
	return Options{
		CountPassedTurns: true,
		TieBreak:         TieBreakName,
	}
}

// Tally acumula os eventos do mês em totais por barbeiro. O total é sempre
// recalculado a partir do log de eventos, nunca mantido como contador mutável,
// para que correções retroativas dentro do mês sejam refletidas.
func Tally(events []domain.RotationEvent, month domain.MonthKey, opts Options) map[string]domain.MonthlyTally {
	tallies := make(map[string]domain.MonthlyTally)

	for _, event := range events {
		// Eventos fora do mês consultado são ignorados
		if event.Month != month {
			continue
		}

		tally := tallies[event.BarberID]
		tally.BarberID = event.BarberID

		switch event.Kind {
		case domain.EventServiceRecorded:
			tally.TotalCount += event.Count
		case domain.EventTurnPassed:
			tally.DaysPassed++
			if opts.CountPassedTurns {
				tally.TotalCount++
			}
		}

		tallies[event.BarberID] = tally
	}

	return tallies
}

// Rank ordena os barbeiros ativos do mais "da vez" para o menos: contagem
// mensal crescente, com desempate configurável. Todos os barbeiros empatados
// na menor contagem são marcados como da vez simultaneamente.
func Rank(
	events []domain.RotationEvent,
	barbers []domain.Barber,
	month domain.MonthKey,
	opts Options,
) []domain.RankedBarber {
	tallies := Tally(events, month, opts)

	ranked := make([]domain.RankedBarber, 0, len(barbers))
	for _, barber := range barbers {
		if !barber.Active {
			continue
		}

		tally := tallies[barber.ID]
		ranked = append(ranked, domain.RankedBarber{
			BarberID:   barber.ID,
			BarberName: barber.Name,
			TotalCount: tally.TotalCount,
			DaysPassed: tally.DaysPassed,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TotalCount != ranked[j].TotalCount {
			return ranked[i].TotalCount < ranked[j].TotalCount
		}

		if opts.TieBreak == TieBreakFewestPasses && ranked[i].DaysPassed != ranked[j].DaysPassed {
			return ranked[i].DaysPassed < ranked[j].DaysPassed
		}

		return ranked[i].BarberName < ranked[j].BarberName
	})

	for i := range ranked {
		ranked[i].Position = i + 1
		// Empate na menor contagem: todos são da vez
		ranked[i].IsBarberDue = ranked[i].TotalCount == ranked[0].TotalCount
	}

	return ranked
}

package status

import "fmt"

// meritBonus is the per-rank stat bonus: +10 HP or MP, +1 for BP stats.
var meritBonus = [kindCount]int{10, 10, 1, 1, 1, 1, 1, 1, 1}

// MeritPoints holds the merit ranks invested per stat, each in
// [0, MaxMeritRank].
type MeritPoints struct {
	HP  int
	MP  int
	STR int
	DEX int
	VIT int
	AGI int
	INT int
	MND int
	CHR int
}

// Rank returns the invested rank for the stat identified by kind.
//
// Precondition: kind must be an enumerated value (panics otherwise).
func (m MeritPoints) Rank(kind Kind) int {
	switch kind {
	case KindHP:
		return m.HP
	case KindMP:
		return m.MP
	case KindSTR:
		return m.STR
	case KindDEX:
		return m.DEX
	case KindVIT:
		return m.VIT
	case KindAGI:
		return m.AGI
	case KindINT:
		return m.INT
	case KindMND:
		return m.MND
	case KindCHR:
		return m.CHR
	default:
		panic(fmt.Sprintf("status: MeritPoints.Rank: unknown stat kind %d", int(kind)))
	}
}

// Validate checks that every rank is within [0, MaxMeritRank].
//
// Postcondition: Returns nil if all ranks are in range, or an error naming
// the first out-of-range stat.
func (m MeritPoints) Validate() error {
	for _, kind := range Kinds {
		if r := m.Rank(kind); r < 0 || r > MaxMeritRank {
			return fmt.Errorf("merit rank for %s must be in [0,%d], got %d", kind, MaxMeritRank, r)
		}
	}
	return nil
}

// Bonus returns the flat stat bonus granted by the invested ranks.
//
// Precondition: the rank for kind must be within [0, MaxMeritRank]
// (panics otherwise; validate at construction time).
func (m MeritPoints) Bonus(kind Kind) int {
	rank := m.Rank(kind)
	if rank < 0 || rank > MaxMeritRank {
		panic(fmt.Sprintf("status: MeritPoints.Bonus: rank %d for %s outside [0,%d]", rank, kind, MaxMeritRank))
	}
	return meritBonus[kind] * rank
}

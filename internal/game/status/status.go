package status

import (
	"fmt"
	"math"
)

// Status is the nine-stat result of a base calculation. It is a plain
// value: produced fresh on every calculation, structurally comparable, and
// never mutated by the engine after construction.
type Status struct {
	HP int
	MP int

	STR int
	DEX int
	VIT int
	AGI int
	INT int
	MND int
	CHR int
}

// Value returns the stat identified by kind.
//
// Precondition: kind must be an enumerated value (panics otherwise).
func (s Status) Value(kind Kind) int {
	switch kind {
	case KindHP:
		return s.HP
	case KindMP:
		return s.MP
	case KindSTR:
		return s.STR
	case KindDEX:
		return s.DEX
	case KindVIT:
		return s.VIT
	case KindAGI:
		return s.AGI
	case KindINT:
		return s.INT
	case KindMND:
		return s.MND
	case KindCHR:
		return s.CHR
	default:
		panic(fmt.Sprintf("status: Status.Value: unknown stat kind %d", int(kind)))
	}
}

// Values accumulates the nine stat totals in float64 while contribution
// stages run. The growth formula produces half-point fractions, and two
// half points from separate sources still add up to a full point, so the
// fractions must survive until the single floor in Finalize.
type Values [kindCount]float64

// Value returns the accumulated total for the stat identified by kind.
//
// Precondition: kind must be an enumerated value (panics otherwise).
func (v Values) Value(kind Kind) float64 {
	if !kind.Valid() {
		panic(fmt.Sprintf("status: Values.Value: unknown stat kind %d", int(kind)))
	}
	return v[kind]
}

// Add returns a copy of v with delta added to the stat identified by kind.
//
// Precondition: kind must be an enumerated value (panics otherwise).
func (v Values) Add(kind Kind, delta float64) Values {
	if !kind.Valid() {
		panic(fmt.Sprintf("status: Values.Add: unknown stat kind %d", int(kind)))
	}
	v[kind] += delta
	return v
}

// Finalize floors each accumulated total into the displayed Status.
func (v Values) Finalize() Status {
	var s Status
	for _, kind := range Kinds {
		s = s.Add(kind, int(math.Floor(v[kind])))
	}
	return s
}

// Add returns a copy of s with delta added to the stat identified by kind.
//
// Precondition: kind must be an enumerated value (panics otherwise).
func (s Status) Add(kind Kind, delta int) Status {
	switch kind {
	case KindHP:
		s.HP += delta
	case KindMP:
		s.MP += delta
	case KindSTR:
		s.STR += delta
	case KindDEX:
		s.DEX += delta
	case KindVIT:
		s.VIT += delta
	case KindAGI:
		s.AGI += delta
	case KindINT:
		s.INT += delta
	case KindMND:
		s.MND += delta
	case KindCHR:
		s.CHR += delta
	default:
		panic(fmt.Sprintf("status: Status.Add: unknown stat kind %d", int(kind)))
	}
	return s
}

// Package status implements the base-status calculation engine: growth
// grades, the per-grade coefficient tables, and the piecewise level formula
// that turns a grade and a character level into a stat value.
package status

import "fmt"

// Grade is an ordinal growth category, A (best) through G (worst).
// Grades are assigned per race per stat and select the coefficient row
// that drives the stat's growth; they are never computed.
type Grade int

const (
	GradeA Grade = iota
	GradeB
	GradeC
	GradeD
	GradeE
	GradeF
	GradeG

	gradeCount = 7
)

// Grades lists every grade in order, best to worst.
var Grades = [gradeCount]Grade{GradeA, GradeB, GradeC, GradeD, GradeE, GradeF, GradeG}

// Valid reports whether g is one of the enumerated grades.
func (g Grade) Valid() bool {
	return g >= GradeA && g <= GradeG
}

func (g Grade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return string(rune('A' + int(g)))
}

// Kind identifies one of the nine base stats.
type Kind int

const (
	KindHP Kind = iota
	KindMP
	KindSTR
	KindDEX
	KindVIT
	KindAGI
	KindINT
	KindMND
	KindCHR

	kindCount = 9
)

// Kinds lists every stat kind in canonical order: HP, MP, then the seven
// base points (BP).
var Kinds = [kindCount]Kind{
	KindHP, KindMP,
	KindSTR, KindDEX, KindVIT, KindAGI, KindINT, KindMND, KindCHR,
}

// Valid reports whether k is one of the nine enumerated stat kinds.
func (k Kind) Valid() bool {
	return k >= KindHP && k <= KindCHR
}

// IsHPMP reports whether k is governed by the HP/MP coefficient table
// rather than the BP table.
func (k Kind) IsHPMP() bool {
	return k == KindHP || k == KindMP
}

func (k Kind) String() string {
	switch k {
	case KindHP:
		return "HP"
	case KindMP:
		return "MP"
	case KindSTR:
		return "STR"
	case KindDEX:
		return "DEX"
	case KindVIT:
		return "VIT"
	case KindAGI:
		return "AGI"
	case KindINT:
		return "INT"
	case KindMND:
		return "MND"
	case KindCHR:
		return "CHR"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Package loc provides source positions and ranges for diagnostics.
//
// A Pos is a 1-based row/column pair; row 0 marks an unset position. A
// Loc names a contiguous range in a file. Finis refers to the last
// character covered by the range, not one past it.
package loc

import "fmt"

// Pos is a position in a source file. The zero value is unset.
type Pos struct {
	Row uint16
	Col uint16
}

// IsSet reports whether the position has been assigned a row.
func (p Pos) IsSet() bool {
	return p.Row != 0
}

func (p Pos) String() string {
	if !p.IsSet() {
		return "<unset>"
	}
	if p.Col == 0 {
		return fmt.Sprintf("%d", p.Row)
	}
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Loc is a range in a source file. Path may be empty for synthetic
// locations. Finis names the last covered character.
type Loc struct {
	Path  string
	Begin Pos
	Finis Pos
}

// IsSet reports whether the location has been assigned a begin position.
func (l Loc) IsSet() bool {
	return l.Begin.IsSet()
}

// AtBegin returns the location collapsed onto its begin position.
func (l Loc) AtBegin() Loc {
	return Loc{Path: l.Path, Begin: l.Begin, Finis: l.Begin}
}

// AtFinis returns the location collapsed onto its finis position.
func (l Loc) AtFinis() Loc {
	return Loc{Path: l.Path, Begin: l.Finis, Finis: l.Finis}
}

// Join spans from l's begin to other's finis. The path is taken from l.
func (l Loc) Join(other Loc) Loc {
	return Loc{Path: l.Path, Begin: l.Begin, Finis: other.Finis}
}

func (l Loc) String() string {
	s := l.Begin.String()
	if l.Finis != l.Begin && l.Finis.IsSet() {
		s += "-" + l.Finis.String()
	}
	if l.Path != "" {
		return l.Path + ":" + s
	}
	return s
}

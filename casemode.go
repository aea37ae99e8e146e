package pluck

import "fmt"

//go:generate go tool stringer -type=CaseMode -output=casemode_string.go

// CaseMode selects how a field name is converted before it is used to build
// an accessor method name.
type CaseMode int

const (
	_ CaseMode = iota // zero value is not a valid mode

	// CaseOriginal keeps the field name as given.
	CaseOriginal
	// CaseCamel converts the field name with Caser.Camel.
	CaseCamel
	// CaseSnake converts the field name with Caser.Snake.
	CaseSnake
)

// Transformation describes one accessor method name candidate:
// Prefix + convert(name) + Suffix.
type Transformation struct {
	Mode   CaseMode
	Prefix string
	Suffix string

	// Dynamic lets the transformation match records implementing Caller
	// when no static method with the computed name exists.
	Dynamic bool
}

// String renders the transformation as a method name template.
func (t Transformation) String() string {
	s := fmt.Sprintf("%s{%s}%s", t.Prefix, t.Mode, t.Suffix)
	if t.Dynamic {
		s += "+dynamic"
	}
	return s
}

func (t Transformation) validate() error {
	switch t.Mode {
	case CaseOriginal, CaseCamel, CaseSnake:
		return nil
	default:
		return newConfigError(ErrInvalidCaseMode, "transformation", t.Mode.String())
	}
}

// methodName applies the transformation. camel and snake are computed at
// most once per name by the caller and passed in lazily.
func (t Transformation) methodName(name string, camel, snake func() string) string {
	switch t.Mode {
	case CaseCamel:
		return t.Prefix + camel() + t.Suffix
	case CaseSnake:
		return t.Prefix + snake() + t.Suffix
	default:
		return t.Prefix + name + t.Suffix
	}
}

// DefaultTransformations returns the accessor names tried for Go records:
// GetName, IsName, HasName and Name.
func DefaultTransformations() []Transformation {
	return []Transformation{
		{Mode: CaseCamel, Prefix: "Get"},
		{Mode: CaseCamel, Prefix: "Is"},
		{Mode: CaseCamel, Prefix: "Has"},
		{Mode: CaseCamel},
	}
}

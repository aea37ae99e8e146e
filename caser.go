package pluck

import "github.com/iancoleman/strcase"

// Caser converts field names between naming conventions.
type Caser interface {
	// Camel returns name in upper camel case ("user_name" -> "UserName").
	Camel(name string) string

	// Snake returns name in snake case ("UserName" -> "user_name").
	Snake(name string) string
}

// strcaseCaser implements Caser with strcase.
type strcaseCaser struct{}

// DefaultCaser returns the Caser used when none is configured.
func DefaultCaser() Caser {
	return strcaseCaser{}
}

func (strcaseCaser) Camel(name string) string {
	return strcase.ToCamel(name)
}

func (strcaseCaser) Snake(name string) string {
	return strcase.ToSnake(name)
}

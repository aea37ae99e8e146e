package pluck

import "strings"

// PathResolver resolves dotted names through nested values.
//
// Segments may themselves contain the delimiter, so the split point is
// searched for: the shortest head is looked up first and grown one
// segment at a time on a miss. Once no delimiter is left the whole name
// is tried as a literal key. Given {"a.b": {"c": 1}}, "a.b.c" misses on
// "a" and resolves on "a.b".
type PathResolver struct {
	delimiter string
}

// NewPathResolver returns a PathResolver splitting on delimiter.
func NewPathResolver(delimiter string) (*PathResolver, error) {
	if delimiter == "" {
		return nil, newConfigError(ErrEmptyDelimiter, "path resolver", "")
	}
	return &PathResolver{delimiter: delimiter}, nil
}

// Delimiter returns the segment separator.
func (p *PathResolver) Delimiter() string {
	return p.delimiter
}

// Extract resolves name segment by segment. It does not apply to names
// without an inner delimiter or in literal scope.
func (p *PathResolver) Extract(scope Scope, source any, name string, def any) (any, bool) {
	if scope.literal || strings.Index(name, p.delimiter) <= 0 {
		return nil, false
	}

	e := scope.engine
	head := scope.asLiteral()
	rest := scope.asPath()

	for offset := 0; ; {
		i := strings.Index(name[offset:], p.delimiter)
		if i < 0 {
			if v := e.get(head, source, name, nil); !isNil(v) {
				return v, true
			}
			return def, true
		}

		end := offset + i
		if v := e.get(head, source, name[:end], nil); !isNil(v) {
			return e.get(rest, v, name[end+len(p.delimiter):], def), true
		}
		offset = end + len(p.delimiter)
	}
}

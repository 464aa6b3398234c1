package meta

import (
	"regexp"
	"strings"
)

// maxIdentifierBytes is the PostgreSQL identifier limit (NAMEDATALEN-1).
const maxIdentifierBytes = 63

// identifierRe accepts only already-normalized names: lowercase
// snake_case starting with a letter or underscore.
var identifierRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// reservedColumnWords are keywords forbidden as unquoted column names.
var reservedColumnWords = toSet(
	"select", "from", "where", "table", "user", "order", "group",
	"limit", "insert", "update", "delete", "join", "having", "into",
)

func toSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// IdentifierKind tells ValidateIdentifier what the name names, which
// selects the error wording and whether reserved words apply.
type IdentifierKind string

const (
	IdentifierTable  IdentifierKind = "table"
	IdentifierSchema IdentifierKind = "schema"
	IdentifierColumn IdentifierKind = "column"
)

// label returns the capitalized noun used in error messages.
func (k IdentifierKind) label() string {
	switch k {
	case IdentifierSchema:
		return "Schema"
	case IdentifierColumn:
		return "Column"
	default:
		return "Table"
	}
}

// ValidateIdentifier checks that value is a legal identifier of the given
// kind: non-empty, at most 63 bytes, in normalized snake_case form, and —
// for columns — not a reserved word. Error messages echo at most a
// 40-character preview of the value.
func ValidateIdentifier(value string, kind IdentifierKind) error {
	if strings.TrimSpace(value) == "" {
		return errorf("%s name cannot be empty.", kind.label())
	}
	if len(value) > maxIdentifierBytes {
		return errorf("%s name %q exceeds %d bytes.", kind.label(), preview(value), maxIdentifierBytes)
	}
	if !identifierRe.MatchString(value) {
		return errorf("%s name %q must be lowercase snake_case starting with a letter or underscore.",
			kind.label(), preview(value))
	}
	if kind == IdentifierColumn && reservedColumnWords[strings.ToLower(value)] {
		return errorf("Column name %q is a reserved word.", value)
	}
	return nil
}

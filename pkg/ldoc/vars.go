package ldoc

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// varDeclPattern matches a @var NAME=VALUE declaration. NAME is a bare
// identifier; VALUE runs to the end of the line.
var varDeclPattern = regexp.MustCompile(`@var (\w+)=(.+)`)

// varTable maps variable names to values, preserving declaration order so
// substitution is deterministic. Redeclaring a name overwrites its value
// but keeps its original position.
type varTable struct {
	names  []string
	values map[string]string
}

// newVarTable creates a table pre-seeded from seed, in sorted key order.
func newVarTable(seed map[string]string) *varTable {
	t := &varTable{values: make(map[string]string, len(seed))}
	for _, name := range slices.Sorted(maps.Keys(seed)) {
		t.set(name, seed[name])
	}
	return t
}

func (t *varTable) set(name, value string) {
	if _, ok := t.values[name]; !ok {
		t.names = append(t.names, name)
	}
	t.values[name] = value
}

// substitute replaces every @NAME occurrence of a known variable with its
// value. Values are not re-scanned, so substitution is not recursive.
// Unknown @TOKEN references pass through untouched.
func (t *varTable) substitute(text string) string {
	for _, name := range t.names {
		text = strings.ReplaceAll(text, "@"+name, t.values[name])
	}
	return text
}

// export returns a plain copy of the table for callers.
func (t *varTable) export() map[string]string {
	return maps.Clone(t.values)
}

// collectVars records every @var declaration into vars (later declarations
// of a name win) and returns the buffer with the declaration lines removed.
func collectVars(text string, vars *varTable) string {
	for _, m := range varDeclPattern.FindAllStringSubmatch(text, -1) {
		vars.set(m[1], strings.TrimSpace(m[2]))
	}
	return varDeclPattern.ReplaceAllString(text, "")
}

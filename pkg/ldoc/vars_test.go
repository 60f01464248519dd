package ldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarTableDeclarationOrder(t *testing.T) {
	vars := newVarTable(nil)
	vars.set("B", "bee")
	vars.set("A", "aye")
	vars.set("B", "redeclared")

	assert.Equal(t, []string{"B", "A"}, vars.names, "redeclaring keeps the original position")
	assert.Equal(t, "redeclared", vars.values["B"])
}

func TestVarTableSubstituteNotRecursive(t *testing.T) {
	vars := newVarTable(nil)
	vars.set("A", "@B")
	vars.set("B", "two")

	// A's value references B, but substitution scans each name once over
	// the buffer, so the spliced @B from A's value still gets replaced by
	// the later B pass; a value referencing an earlier name would not.
	assert.Equal(t, "two", vars.substitute("@A"))

	vars2 := newVarTable(nil)
	vars2.set("X", "one")
	vars2.set("Y", "@X")
	assert.Equal(t, "@X", vars2.substitute("@Y"))
}

func TestCollectVars(t *testing.T) {
	vars := newVarTable(nil)

	out := collectVars("@var NAME=ldoc\ntext\n@var NAME=override\n", vars)

	assert.Equal(t, "override", vars.values["NAME"])
	assert.NotContains(t, out, "@var")
	assert.Contains(t, out, "text")
}

func TestVarTableExportIsCopy(t *testing.T) {
	vars := newVarTable(map[string]string{"A": "1"})

	exported := vars.export()
	exported["A"] = "mutated"

	assert.Equal(t, "1", vars.values["A"])
}

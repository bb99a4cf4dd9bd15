package cnst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionsAreDistinct(t *testing.T) {
	seen := map[ActionType]bool{}
	for _, a := range []ActionType{ActionCreate, ActionUpdate, ActionDelete} {
		assert.NotEmpty(t, a)
		assert.False(t, seen[a], "duplicate action %q", a)
		seen[a] = true
	}
}

func TestSessionTypesMatchConfigValues(t *testing.T) {
	assert.Equal(t, "memory", SessionTypeMemory)
	assert.Equal(t, "redis", SessionTypeRedis)
	assert.Equal(t, AppName+".yaml", InventoryYaml)
}

func TestDefaultLanguageIsShipped(t *testing.T) {
	assert.Contains(t, []string{LangEN, LangZH}, LangDefault)
	assert.Equal(t, "X-Lang", XLang)
}

func TestTracerNamesShareAppPrefix(t *testing.T) {
	for _, name := range []string{TraceHTTP, TraceReport} {
		assert.Regexp(t, "^"+AppName+"/", name)
	}
}

package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootsmuggler/logictools/logic"
)

func ingest(t *testing.T, c *Catalog, f logic.Formula) {
	t.Helper()
	require.NoError(t, c.Ingest(f, logic.TableOf(f, c.N())))
}

func TestCatalogGroupsByTable(t *testing.T) {
	c := NewCatalog(2)
	f := logic.Xor(logic.Var(0), logic.Var(1))
	g := logic.Not(logic.Xor(logic.Var(0), logic.Not(logic.Var(1))))
	ingest(t, c, f)
	ingest(t, c, g)

	require.Equal(t, 1, c.Len(), "equivalent formulas must share an entry")
	e := c.Entries()[0]
	assert.Equal(t, "[0 1 1 0]", e.Table.String())
	require.Len(t, e.All, 2)
	assert.Equal(t, "p1 ^ p2", e.All[0].String())
	assert.Equal(t, "~(p1 ^ ~p2)", e.All[1].String())
}

func TestCatalogMinimalTies(t *testing.T) {
	c := NewCatalog(2)
	f := logic.Xor(logic.Var(0), logic.Var(1))
	g := logic.Xor(logic.Not(logic.Var(0)), logic.Not(logic.Var(1)))
	ingest(t, c, f)
	ingest(t, c, g)

	e := c.Lookup(logic.MakeTable(6, 2))
	require.NotNil(t, e)
	assert.Equal(t, 1, e.MinOps)
	require.Len(t, e.Minimal, 2, "ties at the minimum are all retained")
	assert.Equal(t, "p1 ^ p2", e.Minimal[0].String(), "first discovered comes first")
}

func TestCatalogLargerFormulaDoesNotDethrone(t *testing.T) {
	c := NewCatalog(2)
	small := logic.And(logic.Var(0), logic.Var(1))
	big := logic.And(logic.Var(0), logic.And(logic.Var(1), logic.Var(1)))
	ingest(t, c, small)
	ingest(t, c, big)

	e := c.Lookup(logic.TableOf(small, 2))
	require.NotNil(t, e)
	assert.Equal(t, 1, e.MinOps)
	require.Len(t, e.Minimal, 1)
	assert.Equal(t, "p1 & p2", e.Minimal[0].String())
	assert.Len(t, e.All, 2)
}

func TestCatalogOutOfOrderStaysCoherent(t *testing.T) {
	// Ordered ingestion never triggers a replacement, but the record must
	// not go stale if a caller feeds a smaller formula late.
	c := NewCatalog(2)
	big := logic.And(logic.Var(0), logic.And(logic.Var(1), logic.Var(1)))
	small := logic.And(logic.Var(0), logic.Var(1))
	ingest(t, c, big)
	ingest(t, c, small)

	e := c.Lookup(logic.TableOf(small, 2))
	require.NotNil(t, e)
	assert.Equal(t, 1, e.MinOps)
	require.Len(t, e.Minimal, 1)
	assert.Equal(t, "p1 & p2", e.Minimal[0].String())
}

func TestCatalogDoubleIngestIsAnError(t *testing.T) {
	c := NewCatalog(2)
	f := logic.Or(logic.Var(0), logic.Var(1))
	tab := logic.TableOf(f, 2)
	require.NoError(t, c.Ingest(f, tab))
	err := c.Ingest(f, tab)
	require.Error(t, err, "double ingestion is a contract violation, not a dedup")
	assert.Contains(t, err.Error(), "p1 | p2")
	assert.Len(t, c.Formulas(), 1)
}

func TestCatalogDiscoveryOrder(t *testing.T) {
	c := NewCatalog(1)
	ingest(t, c, logic.Var(0))
	ingest(t, c, logic.Not(logic.Var(0)))
	ingest(t, c, logic.Xor(logic.Var(0), logic.Var(0)))

	var got []string
	for _, e := range c.Entries() {
		got = append(got, e.Table.String())
	}
	assert.Equal(t, []string{"[0 1]", "[1 0]", "[0 0]"}, got)
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionalFileSet(t *testing.T) {
	set := NewTransitionalFileSet([]string{"src/order/CMoTOrder.ts", "src/load/CMoTLoad.tsx", "Bare"})

	require.Len(t, set, 3)
	assert.Equal(t, TransitionalFile{Path: "src/order/CMoTOrder.ts", Stem: "CMoTOrder"}, set[0])
	assert.Equal(t, "CMoTLoad", set[1].Stem)
	assert.Equal(t, "Bare", set[2].Stem)
}

func TestTransitionalFileSet_Contains(t *testing.T) {
	set := NewTransitionalFileSet([]string{"src/order/CMoTOrder.ts"})

	assert.True(t, set.Contains("src/order/CMoTOrder.ts"))
	assert.False(t, set.Contains("src/order/Order.ts"))
	assert.False(t, set.Contains("other/order/CMoTOrder.ts"))
}

func TestModuleBucket_PreservesFirstSeenOrder(t *testing.T) {
	bucket := NewModuleBucket()
	bucket.Add("order", "A")
	bucket.Add("load", "B")
	bucket.Add("order", "C")

	assert.Equal(t, 2, bucket.Len())
	assert.Equal(t, []string{"order", "load"}, bucket.Modules())
	assert.Equal(t, []string{"A", "C"}, bucket.Symbols("order"))
	assert.Equal(t, []string{"B"}, bucket.Symbols("load"))
	assert.Nil(t, bucket.Symbols("missing"))
}

func TestSymbolMap_Symbols(t *testing.T) {
	symbols := SymbolMap{"Zed": "z", "Alpha": "a", "Mid": "m"}

	assert.Equal(t, []string{"Alpha", "Mid", "Zed"}, symbols.Symbols())

	module, ok := symbols.Lookup("Mid")
	assert.True(t, ok)
	assert.Equal(t, "m", module)

	_, ok = symbols.Lookup("Nope")
	assert.False(t, ok)
}

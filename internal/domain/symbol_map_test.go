package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "namespacer.dev/pkg/namespacer/internal/model"
)

func TestBuildSymbolMap(t *testing.T) {
	tests := []struct {
		name   string
		barrel string
		want   m.SymbolMap
	}{
		{
			name:   "alias wins over original name",
			barrel: "export { Foo, Bar as Baz } from './widgets/Widget';\n",
			want:   m.SymbolMap{"Foo": "widgets/Widget", "Baz": "widgets/Widget"},
		},
		{
			name: "type-only and multi-line lists",
			barrel: `export type { OrderDTO } from './order/types';
export {
  createOrder,
  cancelOrder, // legacy
} from './order/Order';
`,
			want: m.SymbolMap{
				"OrderDTO":    "order/types",
				"createOrder": "order/Order",
				"cancelOrder": "order/Order",
			},
		},
		{
			name:   "inline type modifiers and extensions are stripped",
			barrel: `export { type LoadId, Load } from "./load/Load.ts";`,
			want:   m.SymbolMap{"LoadId": "load/Load", "Load": "load/Load"},
		},
		{
			name:   "default re-export keeps alias only",
			barrel: "export { default as Client, X as default } from './client/Client';",
			want:   m.SymbolMap{"Client": "client/Client"},
		},
		{
			name:   "no re-exports",
			barrel: "export const version = '1.0.0';\n",
			want:   m.SymbolMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings := BuildSymbolMap("src/index.ts", tt.barrel)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, warnings)
		})
	}
}

func TestBuildSymbolMap_ModulePathsHaveNoPrefixOrExtension(t *testing.T) {
	barrel := `export { A } from './a/A';
export { B } from './b/B.js';
export { C } from './c/C.tsx';
`

	got, _ := BuildSymbolMap("src/index.ts", barrel)

	require.Len(t, got, 3)

	for symbol, module := range got {
		assert.NotContains(t, module, "./", symbol)
		assert.NotRegexp(t, `\.(ts|tsx|js)$`, module, symbol)
	}
}

func TestBuildSymbolMap_SkipsPathsOutsideThePackage(t *testing.T) {
	barrel := `export { X } from '.';
export { Y } from './';
export { Z } from '../up';
export { W } from './w';
`

	got, warnings := BuildSymbolMap("src/index.ts", barrel)

	assert.Equal(t, m.SymbolMap{"W": "w"}, got)
	assert.Empty(t, warnings)
}

func TestBuildSymbolMap_IgnoresCommentedOutExports(t *testing.T) {
	barrel := `// export { Old } from './old';
/*
export * from './gone';
*/
export { X } from './x';
export * from './extra';
`

	got, warnings := BuildSymbolMap("src/index.ts", barrel)

	assert.Equal(t, m.SymbolMap{"X": "x"}, got)
	require.Len(t, warnings, 1)
	assert.Equal(t, 6, warnings[0].Line)
	assert.NotContains(t, warnings[0].Message, "./gone")
}

func TestBuildSymbolMap_WildcardExportWarnsOnce(t *testing.T) {
	barrel := `export { Foo } from './widgets/Widget';
export * from './extra/Extra';
export * from './more/More';
export { Bar } from './bars/Bar';
export * as ns from './ns/Ns';
export type * from './types/All';
`

	got, warnings := BuildSymbolMap("src/index.ts", barrel)

	assert.Equal(t, m.SymbolMap{"Foo": "widgets/Widget", "Bar": "bars/Bar", "ns": "ns/Ns"}, got)
	require.Len(t, warnings, 1)
	assert.Equal(t, m.WarningIncompleteMap, warnings[0].Kind)
	assert.Equal(t, m.Path("src/index.ts"), warnings[0].File)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Contains(t, warnings[0].Message, "./extra/Extra")
	assert.Contains(t, warnings[0].Message, "./more/More")
	assert.Contains(t, warnings[0].Message, "./types/All")
	assert.NotContains(t, warnings[0].Message, "./ns/Ns")
}

func TestBuildSymbolMap_LastWriterWins(t *testing.T) {
	barrel := `export { Shared } from './first/First';
export { Shared } from './second/Second';
export { Same } from './same/Same';
export { Same } from './same/Same';
`

	got, warnings := BuildSymbolMap("src/index.ts", barrel)

	assert.Equal(t, "second/Second", got["Shared"])
	assert.Equal(t, "same/Same", got["Same"])

	require.Len(t, warnings, 1)
	assert.Equal(t, m.WarningSymbolCollision, warnings[0].Kind)
	assert.Equal(t, 2, warnings[0].Line)
	assert.Contains(t, warnings[0].Message, "Shared")
}

func TestNormalizeModulePath(t *testing.T) {
	tests := map[string]string{
		"./order/Order":      "order/Order",
		"./order/Order.ts":   "order/Order",
		"./types/order.d.ts": "types/order",
		"order/Order.mjs":    "order/Order",
		"./order/index":      "order/index",
		"./order/":           "order",
	}

	for in, want := range tests {
		got, ok := normalizeModulePath(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{".", "./", "..", "../shared/D", "./.ts"} {
		_, ok := normalizeModulePath(in)
		assert.False(t, ok, in)
	}
}

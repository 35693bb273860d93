package model

import "sort"

// SymbolMap maps an exported symbol name to the module path that defines it.
// Module paths are relative, carry no leading "./" and no file extension.
type SymbolMap map[string]string

// Lookup returns the owning module for symbol.
func (s SymbolMap) Lookup(symbol string) (string, bool) {
	module, ok := s[symbol]
	return module, ok
}

// Symbols returns the map keys in sorted order.
func (s SymbolMap) Symbols() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// ModuleBucket groups the symbols of one import block by owning module.
// Modules and the symbols inside each module keep first-seen order.
type ModuleBucket struct {
	order   []string
	symbols map[string][]string
}

// NewModuleBucket returns an empty ModuleBucket.
func NewModuleBucket() *ModuleBucket {
	return &ModuleBucket{symbols: make(map[string][]string)}
}

// Add appends symbol to the group of module.
func (b *ModuleBucket) Add(module, symbol string) {
	if _, ok := b.symbols[module]; !ok {
		b.order = append(b.order, module)
	}

	b.symbols[module] = append(b.symbols[module], symbol)
}

// Modules returns the modules in first-seen order.
func (b *ModuleBucket) Modules() []string {
	return b.order
}

// Symbols returns the symbols destined for module.
func (b *ModuleBucket) Symbols(module string) []string {
	return b.symbols[module]
}

// Len returns the number of module groups.
func (b *ModuleBucket) Len() int {
	return len(b.order)
}

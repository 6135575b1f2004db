package gen

// Import is one external reference an artifact needs. The fields are target
// specific: a namespace for transmission models, a module path for front-end
// interfaces.
type Import struct {
	// Category groups imports of the same flavor for ordering purposes.
	Category string
	// Name is the imported symbol, if the target names one.
	Name string
	// Path is the namespace or module path the import resolves to.
	Path string
}

// ImportFunc maps a referenced graph type to the import needed to reach it.
// Returning false means the reference needs no import, e.g. because it lives
// in the same namespace as the importing type.
type ImportFunc func(ref *Type) (Import, bool)

// ResolveImports walks the properties of a type once, in declaration order,
// and collects the imports its references require. Self references and
// references that do not resolve in the graph are skipped. Duplicates keep
// their first occurrence, and the result is returned in reverse first-seen
// order so that callers inserting each import at the front of an import
// block reproduce first-seen order on disk.
func ResolveImports(t *Type, fn ImportFunc) []Import {
	var order []Import
	seen := make(map[Import]bool)
	for _, p := range t.Properties {
		if !p.IsRef() {
			continue
		}
		ref, ok := p.ElementType()
		if !ok || ref == t {
			continue
		}
		imp, ok := fn(ref)
		if !ok || seen[imp] {
			continue
		}
		seen[imp] = true
		order = append(order, imp)
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order
}

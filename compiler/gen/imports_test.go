package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typemill/typemill/source"
)

func TestResolveImports(t *testing.T) {
	require := require.New(t)
	doc := testDocument()
	// References B, then A, then B again.
	doc.EntityTypes = append(doc.EntityTypes,
		&source.Type{Name: "A", Namespace: "Ext"},
		&source.Type{Name: "B", Namespace: "Ext"},
		&source.Type{
			Name:      "Holder",
			Namespace: "Store",
			Properties: []*source.Property{
				{Name: "First", Shape: source.Shape{Element: "Ext.B"}},
				{Name: "Second", Shape: source.Shape{Element: "Ext.A"}},
				{Name: "Third", Shape: source.Shape{IsList: true, Element: "Ext.B"}},
			},
		},
	)
	g, err := NewGraph(&Config{Source: doc})
	require.NoError(err)
	holder, ok := g.Lookup("Store.Holder")
	require.True(ok)

	imports := ResolveImports(holder, func(ref *Type) (Import, bool) {
		return Import{Name: ref.Name, Path: ref.SubPath()}, true
	})
	// Deduplicated and reversed from first-seen order.
	require.Len(imports, 2)
	require.Equal("A", imports[0].Name)
	require.Equal("B", imports[1].Name)

	// Prepending one-by-one restores first-seen order on disk.
	a := &Artifact{}
	a.MarkImports()
	for _, imp := range imports {
		a.InsertImport("import " + imp.Name)
	}
	require.Equal([]string{"import B", "import A"}, a.Lines())
}

func TestResolveImportsSkipsSelfAndOpaque(t *testing.T) {
	require := require.New(t)
	doc := testDocument()
	doc.EntityTypes = append(doc.EntityTypes, &source.Type{
		Name:      "Node",
		Namespace: "Store",
		Properties: []*source.Property{
			{Name: "Parent", Shape: source.Shape{Element: "Store.Node"}},
			{Name: "Outside", Shape: source.Shape{Element: "Billing.Invoice"}},
			{Name: "Plain", Shape: source.Shape{Primitive: source.PrimitiveInt}},
		},
	})
	g, err := NewGraph(&Config{Source: doc})
	require.NoError(err)
	node, _ := g.Lookup("Store.Node")

	imports := ResolveImports(node, func(ref *Type) (Import, bool) {
		return Import{Name: ref.Name}, true
	})
	require.Empty(imports)
}

func TestResolveImportsFilter(t *testing.T) {
	require := require.New(t)
	g := testGraph(t)
	order, _ := g.Lookup("Store.Order")

	// The import func can declare references import-free.
	imports := ResolveImports(order, func(ref *Type) (Import, bool) {
		return Import{}, false
	})
	require.Empty(imports)
}

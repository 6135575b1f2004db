package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typemill/typemill/source"
)

func testDocument() *source.Document {
	return &source.Document{
		EntityTypes: []*source.Type{
			{
				Name:      "Customer",
				Namespace: "Store",
				Base:      "EntityBase",
				Properties: []*source.Property{
					{Name: "Id", Shape: source.Shape{Primitive: source.PrimitiveGuid}},
					{Name: "Name", Shape: source.Shape{Primitive: source.PrimitiveString}},
					{Name: "JoinedAt", Shape: source.Shape{Primitive: source.PrimitiveDateTime}},
					{Name: "Orders", Shape: source.Shape{IsList: true, Element: "Store.Order"}},
					{Name: "RowVersion", Shape: source.Shape{Primitive: source.PrimitiveLong}},
				},
			},
			{
				Name:      "Order",
				Namespace: "Store",
				Base:      "EntityBase",
				Properties: []*source.Property{
					{Name: "Id", Shape: source.Shape{Primitive: source.PrimitiveGuid}},
					{Name: "Number", Shape: source.Shape{Primitive: source.PrimitiveLong}},
					{Name: "Total", Shape: source.Shape{Primitive: source.PrimitiveDecimal}},
					{Name: "Status", Shape: source.Shape{IsEnum: true, Element: "Store.OrderStatus"}},
					{Name: "Customer", Shape: source.Shape{Element: "Store.Customer"}, Navigation: true},
					{Name: "Items", Shape: source.Shape{IsList: true, Element: "Store.OrderItem"}},
				},
			},
			{
				Name:      "OrderItem",
				Namespace: "Store",
				Properties: []*source.Property{
					{Name: "Id", Shape: source.Shape{Primitive: source.PrimitiveGuid}},
					{Name: "Quantity", Shape: source.Shape{Primitive: source.PrimitiveInt}},
					{Name: "Order", Shape: source.Shape{Element: "Store.Order"}, Navigation: true},
				},
			},
		},
		ViewTypes: []*source.Type{
			{
				Name:      "CustomerView",
				Namespace: "Store",
				Properties: []*source.Property{
					{Name: "Id", Shape: source.Shape{Primitive: source.PrimitiveGuid}},
					{Name: "Name", Shape: source.Shape{Primitive: source.PrimitiveString}},
					{Name: "OrderCount", Shape: source.Shape{Primitive: source.PrimitiveInt}},
				},
			},
		},
		EnumTypes: []*source.Type{
			{
				Name:      "OrderStatus",
				Namespace: "Store",
				Members: []source.EnumMember{
					{Name: "Pending", Value: 0},
					{Name: "Paid", Value: 1},
					{Name: "Shipped", Value: 2},
				},
			},
		},
	}
}

func testGraph(t *testing.T, opts ...Option) *Graph {
	t.Helper()
	g, err := NewGraph(&Config{Source: testDocument()}, opts...)
	require.NoError(t, err)
	return g
}

func TestNewGraph(t *testing.T) {
	require := require.New(t)
	g := testGraph(t)
	require.Len(g.Nodes, 5)
	// Sorted by qualified name.
	require.Equal("Store.Customer", g.Nodes[0].QualifiedName())
	require.Equal("Store.CustomerView", g.Nodes[1].QualifiedName())
	require.Equal("Store.Order", g.Nodes[2].QualifiedName())
	require.Equal("Store.OrderItem", g.Nodes[3].QualifiedName())
	require.Equal("Store.OrderStatus", g.Nodes[4].QualifiedName())

	require.Len(g.Entities(), 3)
	require.Len(g.Views(), 1)
	require.Len(g.Enums(), 1)
	require.Empty(g.Warnings)

	customer, ok := g.Lookup("Store.Customer")
	require.True(ok)
	require.True(customer.IsEntity())
	require.Equal("CustomerModel", customer.ModelName())
	require.Equal("CustomerService", customer.ServiceName())
	require.Equal("customers", customer.Resource())
	require.Equal("store/customer", customer.SubPath())
}

func TestGraphClassification(t *testing.T) {
	require := require.New(t)
	g := testGraph(t)
	order, ok := g.Lookup("Store.Order")
	require.True(ok)

	kinds := map[string]ValueKind{}
	for _, p := range order.Properties {
		kinds[p.Name] = p.Kind
	}
	require.Equal(ValueGuid, kinds["Id"])
	require.Equal(ValueScalar, kinds["Number"])
	require.Equal(ValueScalar, kinds["Total"])
	require.Equal(ValueEnum, kinds["Status"])
	require.Equal(ValueEntityRef, kinds["Customer"])
	require.Equal(ValueListRef, kinds["Items"])

	items := order.Properties[len(order.Properties)-1]
	require.True(items.IsCollection())
	require.True(items.IsRef())
	elem, ok := items.ElementType()
	require.True(ok)
	require.Equal("OrderItem", elem.Name)
}

func TestGraphVersionProperties(t *testing.T) {
	require := require.New(t)
	g := testGraph(t)
	customer, ok := g.Lookup("Store.Customer")
	require.True(ok)

	var version *Property
	for _, p := range customer.Properties {
		if p.Name == "RowVersion" {
			version = p
		}
	}
	require.NotNil(version)
	require.True(version.Version)

	// Kept in the data shape, excluded from equality.
	for _, p := range customer.DataProperties() {
		if p.Name == "RowVersion" {
			version = nil
		}
	}
	require.Nil(version)
	for _, p := range customer.EqualityProperties() {
		require.NotEqual("RowVersion", p.Name)
	}
}

func TestGraphNavigationProperties(t *testing.T) {
	require := require.New(t)
	g := testGraph(t)
	order, ok := g.Lookup("Store.Order")
	require.True(ok)
	for _, p := range order.DataProperties() {
		require.NotEqual("Customer", p.Name)
	}
}

func TestGraphUnknownShapeSkipped(t *testing.T) {
	require := require.New(t)
	doc := testDocument()
	doc.EntityTypes[0].Properties = append(doc.EntityTypes[0].Properties,
		&source.Property{Name: "Mystery"},
		&source.Property{Name: "Unsized", Shape: source.Shape{IsList: true}},
	)
	g, err := NewGraph(&Config{Source: doc})
	require.NoError(err)
	require.Len(g.Warnings, 2)

	customer, ok := g.Lookup("Store.Customer")
	require.True(ok)
	for _, p := range customer.Properties {
		require.NotEqual("Mystery", p.Name)
		require.NotEqual("Unsized", p.Name)
	}
}

func TestGraphDuplicateName(t *testing.T) {
	require := require.New(t)
	doc := testDocument()
	doc.ViewTypes = append(doc.ViewTypes, &source.Type{Name: "Customer", Namespace: "Store"})
	_, err := NewGraph(&Config{Source: doc})
	require.Error(err)
	require.True(IsExtractError(err))
}

func TestGraphMissingSource(t *testing.T) {
	require := require.New(t)
	_, err := NewGraph(&Config{})
	require.Error(err)
	require.True(IsConfigError(err))
	_, err = NewGraph(nil)
	require.ErrorIs(err, ErrMissingConfig)
}

func TestGraphOpaqueReference(t *testing.T) {
	require := require.New(t)
	doc := testDocument()
	doc.EntityTypes[0].Properties = append(doc.EntityTypes[0].Properties,
		&source.Property{Name: "External", Shape: source.Shape{Element: "Billing.Invoice"}},
	)
	g, err := NewGraph(&Config{Source: doc})
	require.NoError(err)
	customer, _ := g.Lookup("Store.Customer")
	var external *Property
	for _, p := range customer.Properties {
		if p.Name == "External" {
			external = p
		}
	}
	require.NotNil(external)
	require.Equal(ValueEntityRef, external.Kind)
	_, ok := external.ElementType()
	require.False(ok)
}

package web

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/typemill/typemill/compiler/gen"
	"github.com/typemill/typemill/source"
)

func storeDocument() *source.Document {
	return &source.Document{
		EntityTypes: []*source.Type{
			{
				Name:      "Order",
				Namespace: "Store",
				Properties: []*source.Property{
					{Name: "Id", Shape: source.Shape{Primitive: source.PrimitiveGuid}},
					{Name: "Number", Shape: source.Shape{Primitive: source.PrimitiveLong}},
					{Name: "Open", Shape: source.Shape{Primitive: source.PrimitiveBool}},
					{Name: "Note", Shape: source.Shape{Primitive: source.PrimitiveString}},
					{Name: "PlacedAt", Shape: source.Shape{Primitive: source.PrimitiveDateTime}},
					{Name: "Status", Shape: source.Shape{IsEnum: true, Element: "Store.OrderStatus"}},
					{Name: "Customer", Shape: source.Shape{Element: "Store.Customer"}},
					{Name: "Items", Shape: source.Shape{IsList: true, Element: "Store.OrderItem"}},
					{Name: "History", Shape: source.Shape{IsList: true, Element: "Store.OrderStatus"}},
					{Name: "Tags", Shape: source.Shape{IsList: true, Element: "string"}},
				},
			},
			{Name: "Customer", Namespace: "Store"},
			{Name: "OrderItem", Namespace: "Store"},
		},
		ViewTypes: []*source.Type{
			{
				Name:      "OrderView",
				Namespace: "Store",
				Properties: []*source.Property{
					{Name: "Id", Shape: source.Shape{Primitive: source.PrimitiveGuid}},
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
				},
			},
		},
	}
}

func storeGraph(t *testing.T) *gen.Graph {
	t.Helper()
	g, err := gen.NewGraph(gen.MustNewConfig(gen.WithSource(storeDocument())))
	require.NoError(t, err)
	return g
}

func emit(t *testing.T, e gen.Emitter, r *gen.Resolver, typeName string) *gen.Artifact {
	t.Helper()
	g := storeGraph(t)
	typ, ok := g.Lookup(typeName)
	require.True(t, ok)
	if r == nil {
		r = gen.NewResolver(nil, nil)
	}
	a, err := e.Emit(typ, r)
	require.NoError(t, err)
	return a
}

func TestInterfaceEmitter(t *testing.T) {
	require := require.New(t)
	a := emit(t, &interfaceEmitter{}, nil, "Store.Order")
	require.Equal("store/order.model.ts", a.Path())
	out := string(a.Bytes())

	require.Contains(out, "export interface OrderModel {")
	require.Contains(out, "  id: string;")
	require.Contains(out, "  number: number;")
	require.Contains(out, "  open: boolean;")
	require.Contains(out, "  note: string;")
	require.Contains(out, "  placedAt: Date;")
	require.Contains(out, "  status: OrderStatus;")
	require.Contains(out, "  customer: CustomerModel;")
	require.Contains(out, "  items: OrderItemModel[];")
	// A collection of a non-reference shape stays bare.
	require.Contains(out, "  tags: string[];")
	require.Contains(out, gen.BeginImportRegion)
	require.Contains(out, gen.BeginCodeRegion)
}

func TestInterfaceEmitterImports(t *testing.T) {
	require := require.New(t)
	out := string(emit(t, &interfaceEmitter{}, nil, "Store.Order").Bytes())
	require.Contains(out, "import { OrderStatus } from './order-status.enum';")
	require.Contains(out, "import { CustomerModel } from './customer.model';")
	require.Contains(out, "import { OrderItemModel } from './order-item.model';")
	// First-seen reference order on disk.
	require.True(strings.Index(out, "{ OrderStatus }") < strings.Index(out, "{ CustomerModel }"))
	require.True(strings.Index(out, "{ CustomerModel }") < strings.Index(out, "{ OrderItemModel }"))
}

func TestInterfaceEmitterEnumCollection(t *testing.T) {
	require := require.New(t)
	out := string(emit(t, &interfaceEmitter{}, nil, "Store.Order").Bytes())

	// Enum elements keep the bare enum name, matching the enum import.
	require.Contains(out, "  history: OrderStatus[];")
	require.NotContains(out, "OrderStatusModel")
	require.Contains(out, "import { OrderStatus } from './order-status.enum';")
}

func TestInterfaceEmitterPropertyDisabled(t *testing.T) {
	require := require.New(t)
	store := memStore{
		{"Web", "ModelProperty", "Store.Order.Note", "Generate"}: "false",
	}
	r := gen.NewResolver(store, nil)
	out := string(emit(t, &interfaceEmitter{}, r, "Store.Order").Bytes())

	require.NotContains(out, "note:")
	require.Contains(out, "  number: number;")
}

type memStore map[[4]string]string

func (s memStore) LookupGenerationSetting(unit, kind, identity, key string) (string, bool) {
	v, ok := s[[4]string{unit, kind, identity, key}]
	return v, ok
}

func TestInterfaceEmitterUnknownShape(t *testing.T) {
	require := require.New(t)
	g := storeGraph(t)
	typ, _ := g.Lookup("Store.Order")
	r := gen.NewResolver(nil, nil)
	e := &interfaceEmitter{}

	// Force a shape the front end has no mapping for.
	lit, ok := e.typeLiteral(typ, &gen.Property{Name: "Weird", Kind: gen.ValueKind(99)}, r)
	require.False(ok)
	require.Empty(lit)
	require.Len(r.Warnings(), 1)

	// The same property warns once even across repeated emission.
	_, _ = e.typeLiteral(typ, &gen.Property{Name: "Weird", Kind: gen.ValueKind(99)}, r)
	require.Len(r.Warnings(), 1)
}

func TestServiceEmitter(t *testing.T) {
	require := require.New(t)
	a := emit(t, &serviceEmitter{target: New()}, nil, "Store.Order")
	require.Equal("store/order.service.ts", a.Path())
	out := string(a.Bytes())

	require.Contains(out, "import { Injectable } from '@angular/core';")
	require.Contains(out, "import { EntityService } from '@app/core';")
	require.Contains(out, "import { OrderModel } from './order.model';")
	require.Contains(out, "@Injectable({ providedIn: 'root' })")
	require.Contains(out, "export class OrderService extends EntityService<OrderModel> {")
	require.Contains(out, "    super('orders');")
	require.Contains(out, gen.BeginCodeRegion)
}

func TestServiceEmitterViewFlavor(t *testing.T) {
	require := require.New(t)
	out := string(emit(t, &serviceEmitter{target: New()}, nil, "Store.OrderView").Bytes())
	require.Contains(out, "import { ViewService } from '@app/core';")
	require.Contains(out, "export class OrderViewService extends ViewService<OrderViewModel> {")
	require.Contains(out, "    super('orderviews');")
}

func TestEnumEmitter(t *testing.T) {
	require := require.New(t)
	a := emit(t, &enumEmitter{}, nil, "Store.OrderStatus")
	require.Equal("store/order-status.enum.ts", a.Path())
	out := string(a.Bytes())
	require.Contains(out, "export enum OrderStatus {")
	require.Contains(out, "  Pending = 0,")
	require.Contains(out, "  Paid = 1,")
}

func TestTargetEmitters(t *testing.T) {
	require := require.New(t)
	g := storeGraph(t)
	tg := New()
	require.Equal(gen.UnitWeb, tg.Unit())
	order, _ := g.Lookup("Store.Order")
	require.Len(tg.Emitters(order), 2)
	status, _ := g.Lookup("Store.OrderStatus")
	require.Len(tg.Emitters(status), 1)
}

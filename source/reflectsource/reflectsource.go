// Package reflectsource builds type metadata from Go structs by reflection.
// It exists for tests and in-process schema definitions; production callers
// usually decode metadata exported by their own tooling instead.
package reflectsource

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/typemill/typemill/source"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

// Provider derives entity, view and enum descriptors from registered Go
// types. It implements the type source contract.
type Provider struct {
	namespace string
	entities  []reflect.Type
	views     []reflect.Type
	enums     map[string][]source.EnumMember
}

// Option configures a Provider.
type Option func(*Provider) error

// WithNamespace sets the namespace all derived types are declared under.
func WithNamespace(ns string) Option {
	return func(p *Provider) error {
		p.namespace = ns
		return nil
	}
}

// Entities registers struct values whose types become entity descriptors.
func Entities(values ...any) Option {
	return func(p *Provider) error {
		types, err := structTypes(values)
		if err != nil {
			return err
		}
		p.entities = append(p.entities, types...)
		return nil
	}
}

// Views registers struct values whose types become view descriptors.
func Views(values ...any) Option {
	return func(p *Provider) error {
		types, err := structTypes(values)
		if err != nil {
			return err
		}
		p.views = append(p.views, types...)
		return nil
	}
}

// Enum registers an enum type by name with its members. Struct fields whose
// type name matches a registered enum are classified as enum references.
func Enum(name string, members map[string]int) Option {
	return func(p *Provider) error {
		ms := make([]source.EnumMember, 0, len(members))
		for n, v := range members {
			ms = append(ms, source.EnumMember{Name: n, Value: v})
		}
		sort.Slice(ms, func(i, j int) bool { return ms[i].Value < ms[j].Value })
		p.enums[name] = ms
		return nil
	}
}

// New builds a provider from options.
func New(opts ...Option) (*Provider, error) {
	p := &Provider{enums: make(map[string][]source.EnumMember)}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew is New, panicking on error. Intended for static schema blocks.
func MustNew(opts ...Option) *Provider {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

// Entities implements the type source contract.
func (p *Provider) Entities() []*source.Type { return p.describeAll(p.entities) }

// Views implements the type source contract.
func (p *Provider) Views() []*source.Type { return p.describeAll(p.views) }

// Enums implements the type source contract.
func (p *Provider) Enums() []*source.Type {
	names := make([]string, 0, len(p.enums))
	for n := range p.enums {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*source.Type, 0, len(names))
	for _, n := range names {
		out = append(out, &source.Type{
			Name:      n,
			Namespace: p.namespace,
			Members:   p.enums[n],
		})
	}
	return out
}

func (p *Provider) describeAll(types []reflect.Type) []*source.Type {
	out := make([]*source.Type, 0, len(types))
	for _, t := range types {
		out = append(out, p.describe(t))
	}
	return out
}

func (p *Provider) describe(t reflect.Type) *source.Type {
	st := &source.Type{
		Name:      t.Name(),
		Namespace: p.namespace,
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("typemill")
		if tag == "-" {
			continue
		}
		prop := source.Property{
			Name:       f.Name,
			Shape:      p.shapeOf(f.Type),
			Navigation: tag == "navigation",
		}
		st.Properties = append(st.Properties, &prop)
	}
	return st
}

// shapeOf classifies a Go type into the metadata shape model. Pointers are
// followed; unrecognized types yield an empty shape, which the extractor
// reports and skips.
func (p *Provider) shapeOf(t reflect.Type) source.Shape {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch {
	case t == timeType:
		return source.Shape{Primitive: source.PrimitiveDateTime}
	case t == uuidType:
		return source.Shape{Primitive: source.PrimitiveGuid}
	}
	if _, ok := p.enums[t.Name()]; ok {
		return source.Shape{IsEnum: true, Element: p.qualify(t.Name())}
	}
	switch t.Kind() {
	case reflect.Bool:
		return source.Shape{Primitive: source.PrimitiveBool}
	case reflect.String:
		return source.Shape{Primitive: source.PrimitiveString}
	case reflect.Int, reflect.Int32, reflect.Uint, reflect.Uint32:
		return source.Shape{Primitive: source.PrimitiveInt}
	case reflect.Int64, reflect.Uint64:
		return source.Shape{Primitive: source.PrimitiveLong}
	case reflect.Float32, reflect.Float64:
		return source.Shape{Primitive: source.PrimitiveDouble}
	case reflect.Slice:
		return source.Shape{IsList: true, Element: p.elementName(t.Elem())}
	case reflect.Array:
		return source.Shape{IsArray: true, Element: p.elementName(t.Elem())}
	case reflect.Struct:
		return source.Shape{Element: p.qualify(t.Name())}
	}
	return source.Shape{}
}

func (p *Provider) elementName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return ""
	}
	if t.Kind() == reflect.Struct || p.enums[t.Name()] != nil {
		return p.qualify(t.Name())
	}
	return t.Name()
}

func (p *Provider) qualify(name string) string {
	if p.namespace == "" {
		return name
	}
	return p.namespace + "." + name
}

func structTypes(values []any) ([]reflect.Type, error) {
	types := make([]reflect.Type, 0, len(values))
	for _, v := range values {
		t := reflect.TypeOf(v)
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return nil, fmt.Errorf("reflectsource: %T is not a struct", v)
		}
		types = append(types, t)
	}
	return types, nil
}

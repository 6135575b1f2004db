package gen

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/typemill/typemill"
	"go.uber.org/zap"
)

// All is the wildcard identity matching every item of a given kind.
const All = "All"

// Scope addresses the item a setting is resolved for.
type Scope struct {
	// Unit is the generation unit being produced.
	Unit UnitKind
	// Kind is the item kind the setting attaches to.
	Kind ItemKind
	// Identity is the item-specific identity, e.g. a qualified type name or
	// "Type.Property".
	Identity string
}

// Resolver answers setting queries against a settings store, layering the
// lookup order: the exact identity first, then the All wildcard, then the
// caller's default. Resolvers are safe for concurrent use.
type Resolver struct {
	store typemill.SettingsSource
	log   *zap.Logger

	mu       sync.Mutex
	warnings []string
	warned   map[string]bool
}

// NewResolver wraps a settings store. A nil store resolves every query to
// its default.
func NewResolver(store typemill.SettingsSource, log *zap.Logger) *Resolver {
	if store == nil {
		store = typemill.NoSettings{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Resolver{store: store, log: log, warned: make(map[string]bool)}
}

// QueryGenerationSettingValue resolves a raw setting value. Missing entries
// at both the identity and wildcard layers yield the default.
func (r *Resolver) QueryGenerationSettingValue(unit UnitKind, kind ItemKind, identity, key, def string) string {
	if v, ok := r.lookup(unit, kind, identity, key); ok {
		return v
	}
	return def
}

// lookup layers the identity lookup over the All wildcard, reporting whether
// either layer held an entry. An entry with an empty value is still an entry.
func (r *Resolver) lookup(unit UnitKind, kind ItemKind, identity, key string) (string, bool) {
	if v, ok := r.store.LookupGenerationSetting(string(unit), string(kind), identity, key); ok {
		return v, true
	}
	if identity != All {
		if v, ok := r.store.LookupGenerationSetting(string(unit), string(kind), All, key); ok {
			return v, true
		}
	}
	return "", false
}

// Warn records a non-fatal resolution diagnostic. Each distinct message is
// recorded and logged once.
func (r *Resolver) Warn(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.warned[msg] {
		return
	}
	r.warned[msg] = true
	r.warnings = append(r.warnings, msg)
	r.log.Warn(msg)
}

// Warnings returns the recorded diagnostics in first-seen order.
func (r *Resolver) Warnings() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.warnings))
	copy(out, r.warnings)
	return out
}

// SettingValue constrains the value types a setting can coerce to.
type SettingValue interface {
	~bool | ~int | ~float64 | ~string
}

// Setting resolves a typed setting for a scope. A value that cannot be
// coerced to T is reported through the resolver's warnings and replaced by
// the default rather than failing generation.
func Setting[T SettingValue](r *Resolver, scope Scope, key string, def T) T {
	raw, ok := r.lookup(scope.Unit, scope.Kind, scope.Identity, key)
	if !ok {
		return def
	}
	v, err := coerce[T](raw)
	if err != nil {
		r.Warn(fmt.Sprintf("setting %s/%s/%s/%s: %v, using default %v",
			scope.Unit, scope.Kind, scope.Identity, key, err, def))
		return def
	}
	return v
}

// PropertyEnabled reports whether generation of an individual model property
// is enabled. The identity is the owning type's qualified name joined to the
// property name, e.g. "Store.Order.Status".
func PropertyEnabled(r *Resolver, unit UnitKind, t *Type, p *Property) bool {
	scope := Scope{Unit: unit, Kind: ItemModelProperty, Identity: t.QualifiedName() + "." + p.Name}
	return Setting(r, scope, "Generate", true)
}

func coerce[T SettingValue](raw string) (T, error) {
	var zero T
	switch any(zero).(type) {
	case bool:
		b, err := strconv.ParseBool(strings.ToLower(raw))
		if err != nil {
			return zero, fmt.Errorf("cannot parse %q as bool", raw)
		}
		return any(b).(T), nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return zero, fmt.Errorf("cannot parse %q as int", raw)
		}
		return any(n).(T), nil
	case float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return zero, fmt.Errorf("cannot parse %q as float", raw)
		}
		return any(f).(T), nil
	default:
		return any(raw).(T), nil
	}
}

package gen

// Emitter produces one artifact flavor for a graph type. Returning a nil
// artifact without error skips the type for this emitter.
type Emitter interface {
	// Kind is the item kind the emitter produces, used for settings scoping.
	Kind() ItemKind
	// Emit renders the artifact for a type.
	Emit(t *Type, r *Resolver) (*Artifact, error)
}

// Target is one generation unit: it decides which emitters apply to each
// graph type.
type Target interface {
	// Unit names the generation unit the target produces.
	Unit() UnitKind
	// Emitters returns the emitters that apply to a type. An empty slice
	// skips the type.
	Emitters(t *Type) []Emitter
}

// Hook wraps an emitter with cross-cutting behavior. Hooks run in the order
// given to the config, first hook outermost.
type Hook func(Emitter) Emitter

// EmitFunc adapts a function to the Emitter interface.
type EmitFunc struct {
	ItemKind ItemKind
	Func     func(t *Type, r *Resolver) (*Artifact, error)
}

// Kind implements Emitter.
func (e EmitFunc) Kind() ItemKind { return e.ItemKind }

// Emit implements Emitter.
func (e EmitFunc) Emit(t *Type, r *Resolver) (*Artifact, error) {
	return e.Func(t, r)
}

func wrapEmitter(e Emitter, hooks []Hook) Emitter {
	for i := len(hooks) - 1; i >= 0; i-- {
		e = hooks[i](e)
	}
	return e
}

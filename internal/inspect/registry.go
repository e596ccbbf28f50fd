package inspect

import (
	"reflect"
	"strings"

	"go.uber.org/zap"

	"tinker3d/internal/engine"
)

// Options qualify an inspector registration.
type Options struct {
	// ForChildClasses lets the inspector serve types that embed the
	// inspected type, not just the type itself.
	ForChildClasses bool
	// Fallback inspectors are only consulted when no regular inspector
	// matched anywhere on the embedding chain.
	Fallback bool
	// Pipeline restricts the inspector to running under a specific active
	// render pipeline type. Nil means any pipeline.
	Pipeline reflect.Type
	// GenericFamily registers the inspector for every instantiation of
	// the inspected generic type, not just the named one.
	GenericFamily bool
	// Source labels where the registration came from, for diagnostics and
	// Rebuild. Defaults to the inspector type's package path.
	Source string
}

type registration struct {
	inspected reflect.Type
	inspector reflect.Type
	opts      Options
}

type descriptor struct {
	inspected reflect.Type
	inspector reflect.Type // struct type; instantiated as a pointer
	familyKey string       // non-empty for generic-family registrations
	forChild  bool
	fallback  bool
	pipeline  reflect.Type
	multi     bool
	source    string
}

// Registry maps component types to inspector types. Registrations queue up
// until the first lookup builds the indexes; invalid ones are logged and
// skipped then, never fatal. Not safe for concurrent use; registration and
// lookup both happen on the main loop.
type Registry struct {
	log     *zap.SugaredLogger
	pending []registration
	built   bool

	byType   map[reflect.Type][]*descriptor
	byFamily map[string][]*descriptor
	// Subset of the above holding only multi-edit capable inspectors.
	multiByType   map[reflect.Type][]*descriptor
	multiByFamily map[string][]*descriptor

	activePipeline func() reflect.Type
	scratch        []*descriptor
}

func NewRegistry(log *zap.SugaredLogger) *Registry {
	return &Registry{log: log}
}

func (r *Registry) logger() *zap.SugaredLogger {
	if r.log != nil {
		return r.log
	}
	return zap.S()
}

// SetActivePipeline injects the lookup for the currently active render
// pipeline type. The func may return nil for "no pipeline".
func (r *Registry) SetActivePipeline(fn func() reflect.Type) {
	r.activePipeline = fn
}

// Register queues an inspector for a component type. Both types may be
// given as struct or pointer-to-struct. Validation happens at build time,
// so a bad registration never panics the importing package's init.
func (r *Registry) Register(inspected, inspector reflect.Type, opts Options) {
	if opts.Source == "" && inspector != nil {
		opts.Source = typeIndirect(inspector).PkgPath()
	}
	reg := registration{inspected: inspected, inspector: inspector, opts: opts}
	r.pending = append(r.pending, reg)
	if r.built {
		r.buildOne(reg)
	}
}

func (r *Registry) ensureBuilt() {
	if r.built {
		return
	}
	r.built = true
	r.byType = make(map[reflect.Type][]*descriptor)
	r.byFamily = make(map[string][]*descriptor)
	r.multiByType = make(map[reflect.Type][]*descriptor)
	r.multiByFamily = make(map[string][]*descriptor)
	for _, reg := range r.pending {
		r.buildOne(reg)
	}
}

var (
	inspectorIface = reflect.TypeOf((*Inspector)(nil)).Elem()
	multiIface     = reflect.TypeOf((*MultiObjectEditor)(nil)).Elem()
)

func (r *Registry) buildOne(reg registration) {
	if reg.inspected == nil {
		r.logger().Warnw("ignoring inspector registration with nil inspected type",
			"inspector", typeName(reg.inspector), "source", reg.opts.Source)
		return
	}
	if reg.inspector == nil {
		r.logger().Warnw("ignoring inspector registration with nil inspector type",
			"inspected", typeName(reg.inspected), "source", reg.opts.Source)
		return
	}
	inspector := typeIndirect(reg.inspector)
	if !implementsInspector(inspector) {
		r.logger().Warnw("ignoring inspector that does not implement Inspector (embed BaseInspector and define OnInspectorGUI)",
			"inspector", typeName(inspector), "inspected", typeName(reg.inspected), "source", reg.opts.Source)
		return
	}
	inspected := typeIndirect(reg.inspected)
	familyKey := ""
	if reg.opts.GenericFamily {
		familyKey = familyKeyOf(inspected)
		if familyKey == "" {
			r.logger().Warnw("ignoring generic-family registration for non-generic type",
				"inspected", typeName(inspected), "inspector", typeName(inspector), "source", reg.opts.Source)
			return
		}
	}

	d := &descriptor{
		inspected: inspected,
		inspector: inspector,
		familyKey: familyKey,
		forChild:  reg.opts.ForChildClasses,
		fallback:  reg.opts.Fallback,
		multi:     implementsMulti(inspector),
		source:    reg.opts.Source,
	}
	if reg.opts.Pipeline != nil {
		d.pipeline = typeIndirect(reg.opts.Pipeline)
	}

	if familyKey != "" {
		r.byFamily[familyKey] = append(r.byFamily[familyKey], d)
		if d.multi {
			r.multiByFamily[familyKey] = append(r.multiByFamily[familyKey], d)
		}
		return
	}
	r.byType[inspected] = append(r.byType[inspected], d)
	if d.multi {
		r.multiByType[inspected] = append(r.multiByType[inspected], d)
	}
}

// Rebuild drops every descriptor contributed by source and replays that
// source's queued registrations, leaving the rest of the registry alone.
func (r *Registry) Rebuild(source string) {
	if !r.built {
		return
	}
	dropSource(r.byType, source)
	dropSource(r.byFamily, source)
	dropSource(r.multiByType, source)
	dropSource(r.multiByFamily, source)
	for _, reg := range r.pending {
		if reg.opts.Source == source {
			r.buildOne(reg)
		}
	}
}

func dropSource[K comparable](m map[K][]*descriptor, source string) {
	for key, descs := range m {
		kept := descs[:0]
		for _, d := range descs {
			if d.source != source {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			delete(m, key)
		} else {
			m[key] = kept
		}
	}
}

func implementsInspector(t reflect.Type) bool {
	return t.Implements(inspectorIface) || reflect.PointerTo(t).Implements(inspectorIface)
}

func implementsMulti(t reflect.Type) bool {
	return t.Implements(multiIface) || reflect.PointerTo(t).Implements(multiIface)
}

func typeIndirect(t reflect.Type) reflect.Type {
	if t != nil && t.Kind() == reflect.Pointer {
		return t.Elem()
	}
	return t
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// familyKeyOf returns pkgpath.Name with the type-argument suffix stripped,
// or "" for non-generic types.
func familyKeyOf(t reflect.Type) string {
	name := t.Name()
	idx := strings.IndexByte(name, '[')
	if idx < 0 {
		return ""
	}
	return t.PkgPath() + "." + name[:idx]
}

func isGeneric(t reflect.Type) bool {
	return strings.IndexByte(t.Name(), '[') >= 0
}

// Default is the process-wide registry that package-level registrations
// land in, like the engine's component registry.
var Default = NewRegistry(nil)

// Register queues an inspector registration on the Default registry.
func Register(inspected, inspector reflect.Type, opts Options) {
	Default.Register(inspected, inspector, opts)
}

// RegisterFor is the type-safe way to register: C is the component type,
// I the inspector type.
func RegisterFor[C any, I any](opts Options) {
	Default.Register(
		reflect.TypeOf((*C)(nil)).Elem(),
		reflect.TypeOf((*I)(nil)).Elem(),
		opts,
	)
}

// FindInspectorType resolves on the Default registry.
func FindInspectorType(t reflect.Type, multiEdit bool) (reflect.Type, bool) {
	return Default.FindInspectorType(t, multiEdit)
}

// NewInspectorFor resolves and instantiates on the Default registry.
func NewInspectorFor(targets []engine.Component) (Inspector, bool) {
	return Default.NewInspectorFor(targets)
}

// Rebuild replays one source's registrations on the Default registry.
func Rebuild(source string) {
	Default.Rebuild(source)
}

// SetActivePipeline injects the active-pipeline lookup on the Default
// registry.
func SetActivePipeline(fn func() reflect.Type) {
	Default.SetActivePipeline(fn)
}

package inspect

import (
	"reflect"

	"tinker3d/internal/engine"
)

// FindInspectorType resolves the inspector type for a component type, or
// ok=false when nothing matches. t may be the component's struct type or a
// pointer to it.
//
// Resolution runs two passes: pass 0 considers only regular inspectors,
// pass 1 only fallbacks, so a fallback anywhere on the chain never beats a
// regular inspector anywhere else. Each pass walks the embedding chain
// from the concrete type upward; the first embedding level that yields a
// usable candidate decides. Inspectors pinned to a render pipeline win
// over unconstrained ones when their pipeline is active, are skipped
// entirely when it isn't.
func (r *Registry) FindInspectorType(t reflect.Type, multiEdit bool) (reflect.Type, bool) {
	if t == nil {
		return nil, false
	}
	r.ensureBuilt()

	byType, byFamily := r.byType, r.byFamily
	if multiEdit {
		byType, byFamily = r.multiByType, r.multiByFamily
	}

	base := typeIndirect(t)
	active := r.activePipelineType()

	for _, fallback := range [2]bool{false, true} {
		for ancestor := base; ancestor != nil; ancestor = ancestorOf(ancestor) {
			descs := byType[ancestor]
			if len(descs) == 0 && isGeneric(ancestor) {
				descs = byFamily[familyKeyOf(ancestor)]
			}
			if len(descs) == 0 {
				continue
			}

			candidates := r.scratch[:0]
			for _, d := range descs {
				if d.usableFor(ancestor, ancestor != base, fallback) {
					candidates = append(candidates, d)
				}
			}
			r.scratch = candidates[:0]
			if len(candidates) == 0 {
				continue
			}

			if active != nil {
				for _, d := range candidates {
					if d.pipeline == active {
						return d.inspector, true
					}
				}
			}
			for _, d := range candidates {
				if d.pipeline == nil {
					return d.inspector, true
				}
			}
			// Every candidate here is pinned to some other pipeline; keep
			// walking up the chain.
		}
	}
	return nil, false
}

// usableFor reports whether the descriptor can serve a lookup that reached
// the given embedding level.
func (d *descriptor) usableFor(ancestor reflect.Type, isChild, fallback bool) bool {
	if isChild && !d.forChild {
		return false
	}
	if d.fallback != fallback {
		return false
	}
	// The index already groups by type and family; check anyway so a
	// descriptor fished out of the wrong bucket can never win.
	if d.familyKey != "" {
		return d.familyKey == familyKeyOf(ancestor)
	}
	return d.inspected == ancestor
}

func (r *Registry) activePipelineType() reflect.Type {
	if r.activePipeline == nil {
		return nil
	}
	return typeIndirect(r.activePipeline())
}

// ancestorOf returns the parent on the embedding chain: the first embedded
// struct type, nil when there is none. Pointer embeds count.
func ancestorOf(t reflect.Type) reflect.Type {
	if t.Kind() != reflect.Struct {
		return nil
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.Anonymous {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			return ft
		}
	}
	return nil
}

// NewInspectorFor resolves and instantiates an inspector for a selection
// of components. All targets must share one concrete type; more than one
// target switches the lookup to multi-edit capable inspectors.
func (r *Registry) NewInspectorFor(targets []engine.Component) (Inspector, bool) {
	if len(targets) == 0 || targets[0] == nil {
		return nil, false
	}
	t := reflect.TypeOf(targets[0])
	for _, c := range targets[1:] {
		if reflect.TypeOf(c) != t {
			return nil, false
		}
	}

	inspectorType, ok := r.FindInspectorType(t, len(targets) > 1)
	if !ok {
		return nil, false
	}
	inspector, ok := reflect.New(inspectorType).Interface().(Inspector)
	if !ok {
		return nil, false
	}
	inspector.setTargets(targets)
	return inspector, true
}

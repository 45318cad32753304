// Package app provides the application handle that documentation pages use to
// register server-side callbacks for their live examples.
//
// A callback maps the current values of one or more input properties to a new
// value for an output property. The preview server exposes the registry using
// the same wire shape as Dash's _dash-dependencies and _dash-update-component
// endpoints, so a page's client script can drive the examples.
package app

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/componentdocs/internal/foundation/errors"
)

// Dependency identifies one property of one component.
type Dependency struct {
	ID       string `json:"id"`
	Property string `json:"property"`
}

// String returns the "id.property" form used on the wire.
func (d Dependency) String() string { return d.ID + "." + d.Property }

// Output names the property a callback writes.
func Output(id, property string) Dependency { return Dependency{ID: id, Property: property} }

// Input names a property a callback reads.
func Input(id, property string) Dependency { return Dependency{ID: id, Property: property} }

// Func computes an output value from the input values, in declaration order.
type Func func(ctx context.Context, inputs []any) (any, error)

// Callback is a registered callback.
type Callback struct {
	Output Dependency   `json:"output"`
	Inputs []Dependency `json:"inputs"`
	fn     Func
}

// App is the handle passed to pages that register callbacks.
type App struct {
	id   string
	name string

	mu        sync.RWMutex
	callbacks map[string]*Callback
}

// New creates an application handle.
func New(name string) *App {
	return &App{
		id:        uuid.NewString(),
		name:      name,
		callbacks: map[string]*Callback{},
	}
}

// ID returns the unique handle id.
func (a *App) ID() string { return a.id }

// Name returns the application name.
func (a *App) Name() string { return a.name }

// Callback registers fn to recompute out whenever one of in changes.
// Each output may have only one callback. Registering the same output and
// inputs again replaces the function, so a page can be assembled repeatedly
// against one handle.
func (a *App) Callback(out Dependency, in []Dependency, fn Func) error {
	if a == nil {
		return errors.ValidationError("application handle is required to register callbacks").
			WithContext("output", out.String()).
			Build()
	}
	if out.ID == "" || out.Property == "" {
		return errors.ValidationError("callback output must name a component and property").Build()
	}
	if len(in) == 0 {
		return errors.ValidationError("callback needs at least one input").
			WithContext("output", out.String()).
			Build()
	}
	if fn == nil {
		return errors.ValidationError("callback function is nil").
			WithContext("output", out.String()).
			Build()
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	key := out.String()
	if existing, exists := a.callbacks[key]; exists && !slices.Equal(existing.Inputs, in) {
		return errors.ValidationError("duplicate callback output").
			WithContext("output", key).
			Build()
	}
	a.callbacks[key] = &Callback{Output: out, Inputs: append([]Dependency(nil), in...), fn: fn}
	return nil
}

// Dependencies lists the registered callbacks sorted by output.
func (a *App) Dependencies() []Callback {
	a.mu.RLock()
	defer a.mu.RUnlock()
	deps := make([]Callback, 0, len(a.callbacks))
	for _, cb := range a.callbacks {
		deps = append(deps, Callback{Output: cb.Output, Inputs: cb.Inputs})
	}
	sort.Slice(deps, func(i, j int) bool { return deps[i].Output.String() < deps[j].Output.String() })
	return deps
}

// InputValue is the current value of one input property.
type InputValue struct {
	ID       string `json:"id"`
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// Request asks for the output of one callback given its inputs.
type Request struct {
	Output string       `json:"output"`
	Inputs []InputValue `json:"inputs"`
}

// Response carries the new value keyed by component id and property.
type Response struct {
	Response map[string]map[string]any `json:"response"`
}

// Dispatch runs the callback registered for req.Output. Inputs are matched to
// the declared inputs by id and property; missing ones are passed as nil.
func (a *App) Dispatch(ctx context.Context, req Request) (*Response, error) {
	a.mu.RLock()
	cb, ok := a.callbacks[req.Output]
	a.mu.RUnlock()
	if !ok {
		return nil, errors.NotFoundError("no callback registered for output").
			WithContext("output", req.Output).
			Build()
	}

	values := make([]any, len(cb.Inputs))
	for i, dep := range cb.Inputs {
		for _, in := range req.Inputs {
			if in.ID == dep.ID && in.Property == dep.Property {
				values[i] = in.Value
				break
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out, err := cb.fn(ctx, values)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryCallback, "callback failed").
			WithContext("output", req.Output).
			Build()
	}
	return &Response{Response: map[string]map[string]any{
		cb.Output.ID: {cb.Output.Property: out},
	}}, nil
}

// IntInput reads an integer input value. JSON numbers arrive as float64; nil
// and unknown types yield 0.
func IntInput(inputs []any, i int) int {
	if i < 0 || i >= len(inputs) {
		return 0
	}
	switch v := inputs[i].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

// String identifies the handle in logs as app(name, id).
func (a *App) String() string { return fmt.Sprintf("app(%s, %s)", a.name, a.id) }

package component

import "strings"

type option func(e *Element)

func (o option) applyTo(e *Element) { o(e) }

// Class appends CSS class names to the element.
func Class(names ...string) Arg {
	return option(func(e *Element) {
		for _, n := range names {
			n = strings.TrimSpace(n)
			if n == "" {
				continue
			}
			if e.Class == "" {
				e.Class = n
			} else {
				e.Class += " " + n
			}
		}
	})
}

// ID sets the element id.
func ID(id string) Arg {
	return option(func(e *Element) { e.ID = id })
}

// Styles merges inline style declarations into the element.
func Styles(s Style) Arg {
	return option(func(e *Element) {
		if len(s) == 0 {
			return
		}
		if e.Style == nil {
			e.Style = Style{}
		}
		for k, v := range s {
			e.Style[k] = v
		}
	})
}

// Attr sets an arbitrary attribute. An empty value renders as a boolean attribute.
func Attr(name, value string) Arg {
	return option(func(e *Element) {
		if e.Attrs == nil {
			e.Attrs = map[string]string{}
		}
		e.Attrs[name] = value
	})
}

// El builds an element with the given tag.
func El(tag string, args ...Arg) *Element {
	return (&Element{Tag: tag}).With(args...)
}

// With applies further args to an existing element and returns it.
func (e *Element) With(args ...Arg) *Element {
	for _, a := range args {
		if a != nil {
			a.applyTo(e)
		}
	}
	return e
}

func H2(args ...Arg) *Element   { return El("h2", args...) }
func H4(args ...Arg) *Element   { return El("h4", args...) }
func P(args ...Arg) *Element    { return El("p", args...) }
func Div(args ...Arg) *Element  { return El("div", args...) }
func Span(args ...Arg) *Element { return El("span", args...) }
func Hr(args ...Arg) *Element   { return El("hr", args...) }

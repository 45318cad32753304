// Package component defines the presentational node tree that documentation
// pages are assembled from.
//
// A page is an ordered []Node. Primitive nodes (*Element, Text, Markdown and
// *Code) are rendered directly by the render package. Composite nodes, such as
// the example and source wrappers in docpage or the API reference in apidoc,
// implement Expander and are reduced to primitives at render time. This keeps
// the tree inspectable as plain data: tests can walk it and compare it without
// rendering anything.
package component

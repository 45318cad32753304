package markdown

// LinkKind classifies a link found in markdown.
type LinkKind string

const (
	LinkKindInline              LinkKind = "inline"
	LinkKindImage               LinkKind = "image"
	LinkKindAuto                LinkKind = "auto"
	LinkKindReferenceDefinition LinkKind = "reference_definition"
)

// Link is a link-like construct and its destination.
type Link struct {
	Kind        LinkKind
	Destination string
}

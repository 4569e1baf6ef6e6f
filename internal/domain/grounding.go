package domain

// CitationKind tags where a grounding reference came from.
type CitationKind string

const (
	CitationWeb  CitationKind = "web"
	CitationMaps CitationKind = "maps"
)

// Citation is a grounding reference attached to an assistant reply.
// Web and maps references share the same (title, uri) shape; Kind is the tag.
type Citation struct {
	Kind  CitationKind
	Title string
	URI   string
}

// Complete reports whether the citation can be shown to a visitor.
func (c Citation) Complete() bool {
	return c.Title != "" && c.URI != ""
}

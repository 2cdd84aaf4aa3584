package ports

type MarkupPort interface {
	// Restyle rewrites the inline styling of an HTML document from the
	// static tag table and returns the serialized result.
	Restyle(doc string) (string, error)
}

package holmium

// Option configures a Serializer at construction time.
type Option func(*Serializer)

// WithPrettyPrint controls whether block-level elements get
// surrounding newlines. Enabled by default. Formatting is best-effort
// only; disabling it never changes the meaning of the output.
func WithPrettyPrint(enabled bool) Option {
	return func(s *Serializer) {
		s.pretty = enabled
	}
}

// WithClassifier replaces the tag-category lookup table. The default
// is htmltag.HTML5.
func WithClassifier(c Classifier) Option {
	return func(s *Serializer) {
		if c != nil {
			s.classifier = c
		}
	}
}

// WithEscaper replaces the entity-escaping function applied to text
// and attribute values. The default is escape.Escape.
func WithEscaper(fn EscapeFunc) Option {
	return func(s *Serializer) {
		if fn != nil {
			s.escape = fn
		}
	}
}

// WithNamespaces replaces the local-namespace table. An element whose
// namespace URI appears in the table serializes under its local name.
func WithNamespaces(table map[string]string) Option {
	return func(s *Serializer) {
		if table != nil {
			s.namespaces = table
		}
	}
}

// WithEncoding sets the output character encoding. The default is
// UTF-8, written through unchanged. Unknown names surface as
// encoding.ErrUnsupportedEncoding when dumping starts.
func WithEncoding(name string) Option {
	return func(s *Serializer) {
		s.encoding = name
	}
}

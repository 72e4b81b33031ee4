package node

// Namespace is a prefix/URI pair attached to elements and attributes.
type Namespace struct {
	prefix string
	uri    string
}

func NewNamespace(prefix, uri string) *Namespace {
	return &Namespace{
		prefix: prefix,
		uri:    uri,
	}
}

func (ns *Namespace) Prefix() string {
	if ns == nil {
		return ""
	}
	return ns.prefix
}

func (ns *Namespace) URI() string {
	if ns == nil {
		return ""
	}
	return ns.uri
}

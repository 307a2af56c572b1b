package xidx

import "github.com/signadot/xidx-format/go-xidx/xnode"

// DataSource locates the external payload of a data item.
type DataSource struct {
	link
	Name string
	URL  string
}

func NewDataSource(name, url string) *DataSource {
	return &DataSource{Name: name, URL: url}
}

func (s *DataSource) nodeName() string { return s.Name }
func (s *DataSource) children() []Node { return nil }

func (s *DataSource) Serialize(parent *xnode.Node) *xnode.Node {
	n := parent.NewChild(dataSourceTag)
	if s.Name != "" {
		n.SetAttr("Name", s.Name)
	}
	return n.SetAttr("Url", s.URL)
}

func (s *DataSource) Deserialize(n *xnode.Node) error {
	if !n.Is(dataSourceTag) {
		return mismatch(n, dataSourceTag)
	}
	url, ok := n.Attr("Url")
	if !ok {
		return missing(n, "Url")
	}
	s.Name = n.AttrOr("Name", "")
	s.URL = url
	return nil
}

package xnode

import (
	"encoding/json"
	"fmt"
)

func ToJSON(n *Node) ([]byte, error) {
	return json.Marshal(n)
}

// FromJSON decodes the JSON form produced by ToJSON and restores parent links.
func FromJSON(d []byte) (*Node, error) {
	n := &Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, err
	}
	if err := relink(n); err != nil {
		return nil, err
	}
	return n, nil
}

func relink(n *Node) error {
	if n.Tag == "" {
		return fmt.Errorf("%w: element without tag", ErrBadJSON)
	}
	for _, c := range n.Children {
		if c == nil {
			return fmt.Errorf("%w: null child of %s", ErrBadJSON, n.Tag)
		}
		c.Parent = n
		if err := relink(c); err != nil {
			return err
		}
	}
	return nil
}

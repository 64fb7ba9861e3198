package shopify

import (
	"bytes"
	"encoding/json"
)

// Edge is a single entry in a connection's edges list.
type Edge[T any] struct {
	Node T `json:"node"`
}

// Connection is the Storefront API's edges/nodes pagination wrapper. The same
// field may arrive edge-wrapped or as an already flat array, so decoding
// accepts both shapes. Nodes returns the flat ordered list either way, which
// makes flattening idempotent.
type Connection[T any] struct {
	nodes []T
}

func (c *Connection[T]) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return json.Unmarshal(data, &c.nodes)
	}
	var wrapped struct {
		Edges []Edge[T] `json:"edges"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return err
	}
	nodes := make([]T, 0, len(wrapped.Edges))
	for _, e := range wrapped.Edges {
		nodes = append(nodes, e.Node)
	}
	c.nodes = nodes
	return nil
}

func (c Connection[T]) MarshalJSON() ([]byte, error) {
	if c.nodes == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.nodes)
}

// Nodes returns the connection's entries in edge order.
func (c Connection[T]) Nodes() []T {
	return c.nodes
}

// FromNodes builds an already-flat connection, mostly useful in tests.
func FromNodes[T any](nodes []T) Connection[T] {
	return Connection[T]{nodes: nodes}
}

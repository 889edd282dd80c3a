package id

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
)

// Generator hands out time-ordered int64 ids rendered as decimal strings.
// Ids from a single generator are strictly increasing.
type Generator struct {
	node *snowflake.Node
}

func NewGenerator(nodeID int64) (*Generator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("creating snowflake node %d: %w", nodeID, err)
	}
	return &Generator{node: node}, nil
}

func (g *Generator) Next() string {
	return g.node.Generate().String()
}

func (g *Generator) NextInt64() int64 {
	return g.node.Generate().Int64()
}

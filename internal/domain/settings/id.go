package settings

import (
	"strconv"
	"sync"
	"time"

	"github.com/bwmarrin/snowflake"
)

var (
	idOnce sync.Once
	idNode *snowflake.Node
)

// NewID mints an opaque, time-ordered string token for a new category, item
// or lunch special. Uniqueness only needs to hold within one parent list,
// but snowflake tokens are unique across concurrent editors anyway.
func NewID() string {
	idOnce.Do(func() {
		// NewNode only fails for out-of-range node numbers.
		if node, err := snowflake.NewNode(1); err == nil {
			idNode = node
		}
	})
	if idNode == nil {
		return strconv.FormatInt(time.Now().UnixNano(), 36)
	}

	return idNode.Generate().Base36()
}

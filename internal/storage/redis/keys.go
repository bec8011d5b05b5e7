package redis

import (
	"fmt"

	"github.com/futevolucao/futevolucao-go/internal/model"
)

// Key prefix for all room data
const keyPrefix = "futevo"

// roomKey returns the Redis key for a Room
func roomKey(id model.RoomID) string {
	return fmt.Sprintf("%s:room:%s", keyPrefix, id)
}

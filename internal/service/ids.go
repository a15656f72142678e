package service

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"
)

// generateID produces ids like order_1718000000000_a1b2c3d, the same shape
// the browser client generated.
func generateID(prefix string) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		binary.BigEndian.PutUint32(suffix, uint32(time.Now().UnixNano()))
	}
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), hex.EncodeToString(suffix)[:7])
}

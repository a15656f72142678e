package service

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateID_Shape(t *testing.T) {
	pattern := regexp.MustCompile(`^dish_\d{13}_[0-9a-f]{7}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := generateID("dish")
		assert.Regexp(t, pattern, id)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

package tests

import (
	"testing"

	"tableside/internal/service"

	"github.com/stretchr/testify/assert"
)

func TestDefaultQRGenerator_ProducesPNG(t *testing.T) {
	generator := service.DefaultQRGenerator{BaseURL: "https://pos.example.com"}

	png, err := generator.Generate("order_1")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png[:4])
}

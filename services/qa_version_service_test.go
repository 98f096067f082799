package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"photoscript/services"
)

// 버전 쌍은 항상 낮은 번호가 from 쪽이다. v0(원본)은 to 쪽이 될 수 없다.
func TestOrderVersionPair(t *testing.T) {
	from, to := services.OrderVersionPair(2, 0)
	assert.Equal(t, 0, from)
	assert.Equal(t, 2, to)

	from, to = services.OrderVersionPair(1, 3)
	assert.Equal(t, 1, from)
	assert.Equal(t, 3, to)

	from, to = services.OrderVersionPair(2, 2)
	assert.Equal(t, 2, from)
	assert.Equal(t, 2, to)
}

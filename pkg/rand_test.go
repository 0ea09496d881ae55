package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandString(t *testing.T) {
	cases := []int{0, 3, 5, 10}
	for _, length := range cases {
		str := RandString(length)
		assert.Len(t, str, length)
	}
}

func TestRandHex(t *testing.T) {
	cases := []int{0, 3, 40, 64}
	for _, length := range cases {
		str := RandHex(length)
		assert.Len(t, str, length)
		for _, c := range str {
			assert.Contains(t, "0123456789abcdef", string(c))
		}
	}
}

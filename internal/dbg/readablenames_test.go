package dbg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	type key struct{ trace, segment int }

	name := Name(key{0, 1})
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name(key{0, 1}), "names are memoized")

	assert.Regexp(t, `^[A-Z]`, name)
}

func TestName_Nil(t *testing.T) {
	var p *int
	assert.Equal(t, "Ø", Name(nil))
	assert.Equal(t, "Ø", Name(p))

	x := 5
	assert.NotEqual(t, "Ø", Name(&x))
}

func TestName_Uncomparable(t *testing.T) {
	name := Name([]int{1, 2})
	assert.NotEmpty(t, name)
	assert.Equal(t, name, Name([]int{1, 2}))
	assert.NotPanics(t, func() { Name(map[string]int{"a": 1}) })
	assert.NotPanics(t, func() { Name(struct{ points []int }{[]int{3}}) })
}

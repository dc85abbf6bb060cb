package enumeration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sixInts = []int{1, 2, 3, 4, 5, 6}

func TestIsEmpty(t *testing.T) {
	assert := assert.New(t)

	assert.True(FromSlice([]int{}).IsEmpty())
	assert.False(FromSlice([]int{1}).IsEmpty())
	assert.True(Empty[string]().IsEmpty())
}

func TestIsEmptyNotFast(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice([]int{7}).Filter(func(int) bool { return true })
	require.False(t, e.Fast())

	// peeks, so nothing is consumed
	assert.False(e.IsEmpty())
	assert.False(e.IsEmpty())
	assert.Equal(Some(7), e.Get())
	assert.True(e.IsEmpty())
}

func TestGetAll(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	assert.Equal(6, e.Count())

	for _, want := range sixInts {
		assert.Equal(Some(want), e.Get())
	}

	assert.Equal(0, e.Count())
	assert.True(e.Get().IsEmpty())

	// exhaustion is permanent
	assert.True(e.Next().IsEmpty())
}

func TestIterConsumes(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	assert.Equal(6, e.Count())

	counter := 0
	e.Iter(func(int) {
		counter++
	})

	assert.Equal(6, counter)
	assert.Equal(0, e.Count())
}

func TestClone(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Get()

	e2 := e.Clone()
	assert.Equal(5, e2.Count())
	e.Get()
	assert.Equal(4, e.Count())
	assert.Equal(5, e2.Count())

	assert.Equal([]int{2, 3, 4, 5, 6}, e2.Collect())
	assert.Equal(0, e2.Count())

	// the original is untouched by draining the clone
	assert.Equal(4, e.Count())
	assert.Equal(Some(3), e.Next())
}

func TestPush(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Push(23)

	assert.Equal(7, e.Count())
	assert.Equal(Some(23), e.Next())
	assert.Equal(6, e.Count())
	assert.Equal(Some(1), e.Next())
	assert.Equal(5, e.Count())
}

func TestPushAfterConsuming(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Junk()
	e.Junk()
	before := e.Count()

	e.Push(99)
	assert.Equal(before+1, e.Count())
	assert.Equal(before+1, e.Count())

	assert.Equal(Some(99), e.Next())
	assert.Equal(before, e.Count())

	e.Junk()
	assert.Equal(before-1, e.Count())
}

func TestPushOnExhausted(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice([]int{1})
	e.Junk()
	require.True(t, e.Next().IsEmpty())

	e.Push(42)
	assert.Equal(1, e.Count())
	assert.False(e.IsEmpty())
	assert.Equal(Some(42), e.Next())

	assert.Equal(0, e.Count())
	assert.True(e.Next().IsEmpty())
	assert.True(e.IsEmpty())
}

func TestPushNested(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice([]int{1, 2})
	e.Push(10)
	e.Push(20)
	assert.Equal(4, e.Count())

	assert.Equal([]int{20, 10, 1, 2}, e.Collect())
}

func TestPushZeroValue(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice([]*int{})
	e.Push(nil)

	// a nil element is distinguishable from exhaustion
	o := e.Next()
	assert.True(o.HasValue())
	assert.Nil(o.Unwrap())
	assert.True(e.Next().IsEmpty())
}

func TestCloneWithPendingPush(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Junk()
	e.Push(100)

	c := e.Clone()
	assert.Equal(6, c.Count())
	assert.Equal(Some(100), c.Next())
	assert.Equal(Some(2), c.Next())

	// the original still has its own pending value
	assert.Equal(6, e.Count())
	assert.Equal(Some(100), e.Next())
	assert.Equal(Some(2), e.Next())
}

func TestCloneAfterPushConsumed(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Push(100)
	e.Junk()

	c := e.Clone()
	assert.Equal(6, c.Count())
	assert.Equal(sixInts, c.Collect())
	assert.Equal(sixInts, e.Collect())
}

func TestCloneOfCloneWithPush(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice([]int{1, 2, 3})
	e.Push(0)
	c1 := e.Clone()
	c1.Push(-1)
	c2 := c1.Clone()

	assert.Equal([]int{-1, 0, 1, 2, 3}, c2.Collect())
	assert.Equal([]int{-1, 0, 1, 2, 3}, c1.Collect())
	assert.Equal([]int{0, 1, 2, 3}, e.Collect())
}

func TestPeek(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)

	p := e.Peek()
	p = e.Peek()
	p = e.Peek()
	p = e.Peek()
	assert.Equal(Some(1), p)
	assert.Equal(6, e.Count())

	assert.Equal(Some(1), e.Get())
	assert.Equal(Some(2), e.Peek())
	assert.Equal(5, e.Count())
}

func TestPeekEmpty(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice([]int{})
	assert.True(e.Peek().IsEmpty())
	assert.Equal(0, e.Count())
	assert.True(e.Get().IsEmpty())
}

func TestJunk(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Junk()
	e.Junk()
	assert.Equal(Some(3), e.Get())

	// junking an exhausted enumeration is harmless
	e = FromSlice([]int{})
	e.Junk()
	assert.Equal(0, e.Count())
}

func TestIDs(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	c := e.Clone()
	m := e.Map(func(i int) int { return i })

	assert.NotEqual(e.ID(), c.ID())
	assert.NotEqual(e.ID(), m.ID())
	assert.NotEqual(c.ID(), m.ID())
}

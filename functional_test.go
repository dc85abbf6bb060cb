package enumeration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindElement(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	el := e.Find(func(i int) bool { return i == 4 })

	assert.Equal(Some(4), el)
	assert.Equal(2, e.Count())

	// a second search carries on after the first match
	el = e.Find(func(i int) bool { return i == 3 })
	assert.True(el.IsEmpty())
	assert.Equal(0, e.Count())
}

func TestFindSuccessive(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(hundredInts)

	found := []int{}
	for o := e.Find(isEven); o.HasValue(); o = e.Find(isEven) {
		found = append(found, o.Unwrap())
	}

	assert.Equal(hundredIntsEven, found)
}

func TestFindNoElement(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	el := e.Find(func(i int) bool { return i == 10 })

	assert.True(el.IsEmpty())
	assert.Equal(0, e.Count())

	assert.True(e.Find(func(i int) bool { return i == 3 }).IsEmpty())
}

func TestFindZeroValue(t *testing.T) {
	assert := assert.New(t)

	// finding the zero value is a success, not "not found"
	e := FromSlice([]int{3, 0, 5})
	el := e.Find(func(i int) bool { return i == 0 })

	assert.True(el.HasValue())
	assert.Equal(0, el.Unwrap())
	assert.Equal(1, e.Count())
}

func TestFindPushedValue(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	e.Push(50)

	assert.Equal(Some(50), e.Find(func(i int) bool { return i > 10 }))
	assert.Equal(6, e.Count())
}

func TestIterOrder(t *testing.T) {
	assert := assert.New(t)

	got := []int{}
	FromSlice(hundredInts).Iter(func(i int) {
		got = append(got, i)
	})

	assert.Equal(hundredInts, got)
}

func TestIterEmpty(t *testing.T) {
	assert := assert.New(t)

	called := false
	Empty[int]().Iter(func(int) { called = true })
	assert.False(called)
}

func TestNth(t *testing.T) {
	assert := assert.New(t)

	e := FromSlice(sixInts)
	assert.Equal(Some(1), e.Nth(0))
	assert.Equal(Some(4), e.Nth(2))
	assert.Equal(2, e.Count())

	assert.True(e.Nth(5).IsEmpty())
	assert.Equal(0, e.Count())
}

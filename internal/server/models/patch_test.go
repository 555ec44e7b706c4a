package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatch_States(t *testing.T) {
	current := "old"

	absent := Absent[string]()
	assert.False(t, absent.Present())
	assert.Equal(t, &current, absent.Apply(&current))

	cleared := Clear[string]()
	assert.True(t, cleared.Present())
	assert.Nil(t, cleared.Apply(&current))

	set := Set("new")
	assert.True(t, set.Present())
	require.NotNil(t, set.Apply(&current))
	assert.Equal(t, "new", *set.Apply(&current))
}

func TestStringPatch_EmptyClears(t *testing.T) {
	p := StringPatch(Set(""))
	assert.True(t, p.Present())
	assert.Nil(t, p.Value())

	p = StringPatch(Set("kept"))
	assert.Equal(t, "kept", *p.Value())

	p = StringPatch(Absent[string]())
	assert.False(t, p.Present())
}

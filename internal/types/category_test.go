package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryName(t *testing.T) {
	assert.Equal(t, "Remember", C1.Name())
	assert.Equal(t, "Create", C6.Name())
	assert.Equal(t, "C9", Category("C9").Name())
}

func TestCategoryIsValid(t *testing.T) {
	for _, c := range AllCategories() {
		assert.True(t, c.IsValid(), "category %s", c)
	}
	assert.False(t, Category("C0").IsValid())
	assert.False(t, Category("").IsValid())
}

func TestCategoryForLabel(t *testing.T) {
	for i, label := range Labels {
		c, ok := CategoryForLabel(label)
		require.True(t, ok, "label %s", label)
		assert.Equal(t, AllCategories()[i], c)
	}

	_, ok := CategoryForLabel("Invent")
	assert.False(t, ok)
}

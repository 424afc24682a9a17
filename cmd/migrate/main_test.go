package main

import (
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSteps(t *testing.T) {
	steps, err := parseSteps(nil)
	require.NoError(t, err)
	assert.Equal(t, 1, steps)

	steps, err = parseSteps([]string{" 3 "})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}

func TestParseSteps_Invalid(t *testing.T) {
	_, err := parseSteps([]string{"abc"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, strconv.ErrSyntax))
	assert.Contains(t, err.Error(), `invalid down steps "abc"`)

	_, err = parseSteps([]string{"0"})
	assert.EqualError(t, err, "down steps must be > 0")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())

	assert.NotEqual(t, id, g.Generate())
}

func TestUUIDGenerator_Name(t *testing.T) {
	name := NewUUIDGenerator().Name("image", ".jpg")

	assert.True(t, strings.HasPrefix(name, "image-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))

	_, err := uuid.Parse(strings.TrimSuffix(strings.TrimPrefix(name, "image-"), ".jpg"))
	assert.NoError(t, err)
}

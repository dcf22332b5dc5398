// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New(Config{Level: "info", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, log)

	log, err = New(Config{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = New(Config{Level: "loud", Format: "console"})
	assert.Error(t, err)
}

func TestWithComponent(t *testing.T) {
	base := NewNop()
	tagged := base.WithComponent("scanner")
	require.NotNil(t, tagged)
	assert.NotSame(t, base, tagged)

	// Tagged logger stays usable.
	tagged.Info("noop")
}

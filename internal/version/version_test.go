// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	assert.Equal(t, Version, Short())
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.True(t, strings.HasPrefix(info, "logsift "))
	assert.Contains(t, info, Version)
	assert.Contains(t, info, GitCommit)
}

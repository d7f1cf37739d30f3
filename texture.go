// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Texture is a semantic GPU image resource (spec.md §3, §4.7).
type Texture struct {
	objectBase
	backend hal.Texture
}

// Desc returns the description the texture was created with.
func (t *Texture) Desc() types.TextureDesc { return t.backend.Desc() }

// Destroy releases the texture.
func (t *Texture) Destroy() {
	t.backend.Destroy()
	t.device.registry.Untrack(t.id)
}

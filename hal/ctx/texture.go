// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import "github.com/viktorfejes/VRI/types"

// Texture is a GPU image resource. native holds the backend-owned payload
// for textures that wrap a swapchain back-buffer instead of owning their
// own allocation (spec.md §4.7, CreateTextureFromNative).
type Texture struct {
	device *Device
	desc   types.TextureDesc
	native any
}

// Desc returns the description the texture was created with.
func (t *Texture) Desc() types.TextureDesc { return t.desc }

func (t *Texture) Destroy() {}

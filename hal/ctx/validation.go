// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"sync"

	"github.com/viktorfejes/VRI/types"
)

// validationLayer is a bounded ring of recent messages, the Go analogue
// of the original's ID3D11InfoQueue configured WARN-and-up, no break,
// capped at 1024 messages (vri_d3d11_device.c:d3d11_device_create).
type validationLayer struct {
	mu       sync.Mutex
	cap      int
	messages []validationMessage
}

type validationMessage struct {
	Severity types.MessageSeverity
	Text     string
}

func newValidationLayer(capacity int) *validationLayer {
	return &validationLayer{cap: capacity}
}

func (v *validationLayer) record(sev types.MessageSeverity, text string) {
	if sev < types.MessageSeverityWarning {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.messages) >= v.cap {
		v.messages = v.messages[1:]
	}
	v.messages = append(v.messages, validationMessage{Severity: sev, Text: text})
}

// Messages returns a snapshot of the recorded validation messages.
func (v *validationLayer) Messages() []validationMessage {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]validationMessage, len(v.messages))
	copy(out, v.messages)
	return out
}

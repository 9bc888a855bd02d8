// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
}

func TestNewPatchEvaluatorFromHandle_Nil(t *testing.T) {
	if _, err := NewPatchEvaluatorFromHandle(nil); err == nil {
		t.Error("NewPatchEvaluatorFromHandle(nil) should fail")
	}
}

func TestNewPatchEvaluatorFromHandle_NullHandle(t *testing.T) {
	e, err := NewPatchEvaluatorFromHandle(NullDeviceHandle{}, WithSteps(8))
	if err != nil {
		t.Fatalf("NewPatchEvaluatorFromHandle() error = %v", err)
	}
	if e.GPUReady() {
		t.Error("GPUReady() = true for the null handle")
	}
	if e.Steps() != 8 {
		t.Errorf("Steps() = %d, want 8 (options must pass through)", e.Steps())
	}
}

// halLessHandle exposes the HAL accessor methods but has no device behind
// them, like a host whose GPU initialization failed.
type halLessHandle struct {
	NullDeviceHandle
}

func (halLessHandle) HalDevice() any { return nil }
func (halLessHandle) HalQueue() any  { return nil }

func TestNewPatchEvaluatorFromHandle_NoHALDevice(t *testing.T) {
	e, err := NewPatchEvaluatorFromHandle(halLessHandle{})
	if err != nil {
		t.Fatalf("NewPatchEvaluatorFromHandle() error = %v", err)
	}
	if e.GPUReady() {
		t.Error("GPUReady() = true without a HAL device")
	}
}

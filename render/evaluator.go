package render

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
	types "github.com/gogpu/gputypes"

	"github.com/gogpu/beztess"
	"github.com/gogpu/beztess/outline"
)

//go:embed shaders/tessellate.wgsl
var tessellateWGSL string

// ErrPatchAlignment is returned when a control-point stream is not a
// whole number of patches. The assembler never produces a partial patch;
// hitting this means the buffer was corrupted or mixed across sessions.
var ErrPatchAlignment = errors.New("render: control points not patch-aligned")

// gpuParams is the GPU-compatible layout of the evaluation parameters.
// Must match the Params struct in tessellate.wgsl.
type gpuParams struct {
	PatchCount uint32  // Number of patches in the controls buffer
	Steps      uint32  // Parameter subdivisions per patch
	Scale      float32 // Uniform scale, applied after shift
	Shift      float32 // Horizontal shift, applied before scale
}

// gpuParamsSize is the byte size of gpuParams, the minimum binding size
// of the uniform buffer at binding 0.
const gpuParamsSize = 16

// DefaultSteps is the default number of parameter subdivisions per patch.
const DefaultSteps = 64

// PatchEvaluator expands patch-aligned Bezier control-point streams into
// polyline vertices, steps+1 per patch.
//
// With a hal device it compiles the embedded WGSL shader via naga and
// builds one compute pipeline per target degree. Evaluation runs through
// a CPU mirror of the shader algorithm, which doubles as the reference
// implementation and the headless fallback; buffer dispatch plugs into
// the same pipelines once the host wires a device queue.
type PatchEvaluator struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	// Compute pipelines, one per target degree
	quadPipeline  hal.ComputePipeline
	cubicPipeline hal.ComputePipeline

	// Shader module (cached)
	shaderModule hal.ShaderModule

	// Pipeline layout and bind group layout
	pipelineLayout hal.PipelineLayout
	bindLayout     hal.BindGroupLayout

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32

	steps       int
	gpuReady    bool
	initialized bool
}

// EvaluatorOption configures a PatchEvaluator during creation.
type EvaluatorOption func(*PatchEvaluator)

// WithSteps sets the parameter subdivisions per patch. Values below 1
// fall back to DefaultSteps.
func WithSteps(n int) EvaluatorOption {
	return func(e *PatchEvaluator) {
		if n >= 1 {
			e.steps = n
		}
	}
}

// NewPatchEvaluator creates an evaluator. device and queue may both be
// nil for CPU-only evaluation; if a device is given, the shader and
// pipelines are built eagerly so configuration errors surface here
// rather than mid-frame.
func NewPatchEvaluator(device hal.Device, queue hal.Queue, opts ...EvaluatorOption) (*PatchEvaluator, error) {
	e := &PatchEvaluator{
		device: device,
		queue:  queue,
		steps:  DefaultSteps,
	}
	for _, opt := range opts {
		opt(e)
	}

	if device != nil {
		if err := e.initGPU(); err != nil {
			e.Destroy()
			return nil, err
		}
		e.gpuReady = true
		beztess.Logger().Info("patch evaluator pipelines built", "steps", e.steps)
	} else {
		beztess.Logger().Warn("no GPU device, patch evaluation on CPU")
	}

	e.initialized = true
	return e, nil
}

// NewPatchEvaluatorFromHandle creates an evaluator from a host device
// handle. Handles that also expose HAL types (HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue) get GPU pipelines;
// anything else, including NullDeviceHandle, evaluates on the CPU.
func NewPatchEvaluatorFromHandle(handle DeviceHandle, opts ...EvaluatorOption) (*PatchEvaluator, error) {
	if handle == nil {
		return nil, errors.New("render: nil device handle")
	}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	if hp, ok := handle.(halProvider); ok {
		device, dok := hp.HalDevice().(hal.Device)
		queue, qok := hp.HalQueue().(hal.Queue)
		if dok && qok && device != nil {
			return NewPatchEvaluator(device, queue, opts...)
		}
	}
	return NewPatchEvaluator(nil, nil, opts...)
}

// initGPU compiles the shader and builds the compute pipelines.
func (e *PatchEvaluator) initGPU() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	spirvBytes, err := naga.Compile(tessellateWGSL)
	if err != nil {
		return fmt.Errorf("render: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	e.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range e.spirvCode {
		e.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shaderModule, err := e.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "tessellate_shader",
		Source: hal.ShaderSource{
			SPIRV: e.spirvCode,
		},
	})
	if err != nil {
		return fmt.Errorf("render: failed to create shader module: %w", err)
	}
	e.shaderModule = shaderModule

	if err := e.createBindGroupLayout(); err != nil {
		return err
	}
	if err := e.createPipelineLayout(); err != nil {
		return err
	}
	return e.createPipelines()
}

// createBindGroupLayout creates the bind group layout for both pipelines.
func (e *PatchEvaluator) createBindGroupLayout() error {
	layout, err := e.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "tessellate_layout",
		Entries: []types.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type:           types.BufferBindingTypeUniform,
					MinBindingSize: gpuParamsSize,
				},
			},
			{
				Binding:    1,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeReadOnlyStorage,
				},
			},
			{
				Binding:    2,
				Visibility: types.ShaderStageCompute,
				Buffer: &types.BufferBindingLayout{
					Type: types.BufferBindingTypeStorage,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("render: failed to create bind group layout: %w", err)
	}
	e.bindLayout = layout
	return nil
}

// createPipelineLayout creates the pipeline layout.
func (e *PatchEvaluator) createPipelineLayout() error {
	layout, err := e.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "tessellate_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{e.bindLayout},
	})
	if err != nil {
		return fmt.Errorf("render: failed to create pipeline layout: %w", err)
	}
	e.pipelineLayout = layout
	return nil
}

// createPipelines creates one compute pipeline per target degree.
func (e *PatchEvaluator) createPipelines() error {
	quad, err := e.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "tessellate_quadratic",
		Layout: e.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     e.shaderModule,
			EntryPoint: "cs_eval_quadratic",
		},
	})
	if err != nil {
		return fmt.Errorf("render: failed to create quadratic pipeline: %w", err)
	}
	e.quadPipeline = quad

	cubic, err := e.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "tessellate_cubic",
		Layout: e.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     e.shaderModule,
			EntryPoint: "cs_eval_cubic",
		},
	})
	if err != nil {
		return fmt.Errorf("render: failed to create cubic pipeline: %w", err)
	}
	e.cubicPipeline = cubic
	return nil
}

// Steps returns the parameter subdivisions per patch.
func (e *PatchEvaluator) Steps() int {
	return e.steps
}

// GPUReady reports whether GPU pipelines were built.
func (e *PatchEvaluator) GPUReady() bool {
	return e.gpuReady
}

// Evaluate expands controls — a patch-aligned stream for the given
// target degree — into polyline vertices, steps+1 per patch, applying
// the figure-space transform out = ((p.x + shift) * scale, p.y * scale).
//
// The transform mirrors the shader uniforms; glyph streams assembled by
// a Session are already in session space and should pass scale 1,
// shift 0.
func (e *PatchEvaluator) Evaluate(degree outline.Degree, controls []beztess.Point, scale, shift float64) ([]beztess.Point, error) {
	if !e.initialized {
		return nil, errors.New("render: evaluator not initialized")
	}

	size := degree.ControlPoints()
	switch degree {
	case outline.DegreeQuadratic, outline.DegreeCubic:
	default:
		return nil, fmt.Errorf("render: unsupported target degree %s", degree)
	}
	if len(controls)%size != 0 {
		return nil, fmt.Errorf("render: %d points for %d-point patches: %w", len(controls), size, ErrPatchAlignment)
	}

	return e.evaluateCPU(degree, controls, scale, shift), nil
}

// evaluateCPU computes the polyline on the CPU, mirroring the shader
// algorithm vertex for vertex.
func (e *PatchEvaluator) evaluateCPU(degree outline.Degree, controls []beztess.Point, scale, shift float64) []beztess.Point {
	size := degree.ControlPoints()
	patchCount := len(controls) / size
	out := make([]beztess.Point, 0, patchCount*(e.steps+1))

	for p := 0; p < patchCount; p++ {
		base := p * size
		for i := 0; i <= e.steps; i++ {
			t := float64(i) / float64(e.steps)

			var pt beztess.Point
			if degree == outline.DegreeQuadratic {
				q := beztess.NewQuadBez(controls[base], controls[base+1], controls[base+2])
				pt = q.Eval(t)
			} else {
				c := beztess.NewCubicBez(controls[base], controls[base+1], controls[base+2], controls[base+3])
				pt = c.Eval(t)
			}

			out = append(out, beztess.Point{
				X: (pt.X + shift) * scale,
				Y: pt.Y * scale,
			})
		}
	}
	return out
}

// Destroy releases GPU resources in reverse creation order.
// Safe to call on a CPU-only or partially initialized evaluator.
func (e *PatchEvaluator) Destroy() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.device == nil {
		return
	}
	if e.quadPipeline != nil {
		e.device.DestroyComputePipeline(e.quadPipeline)
		e.quadPipeline = nil
	}
	if e.cubicPipeline != nil {
		e.device.DestroyComputePipeline(e.cubicPipeline)
		e.cubicPipeline = nil
	}
	if e.pipelineLayout != nil {
		e.device.DestroyPipelineLayout(e.pipelineLayout)
		e.pipelineLayout = nil
	}
	if e.bindLayout != nil {
		e.device.DestroyBindGroupLayout(e.bindLayout)
		e.bindLayout = nil
	}
	if e.shaderModule != nil {
		e.device.DestroyShaderModule(e.shaderModule)
		e.shaderModule = nil
	}
}

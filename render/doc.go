// Package render evaluates patch-aligned Bezier control-point streams
// into polyline vertices, the GPU half of the beztess pipeline.
//
// The evaluator compiles an embedded WGSL compute shader (quadratic and
// cubic entry points) via naga and builds wgpu/hal pipelines when a
// device is available. Evaluation itself runs through a CPU mirror of
// the shader algorithm, so output is identical with or without a GPU
// and headless tests exercise the same math the shader states.
package render

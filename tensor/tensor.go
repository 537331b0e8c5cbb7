// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public API for the dense host tensors
// produced by prep's encoders.
//
// The package defines the core types for type-safe encoder output:
//   - Tensor[T]: generic dense tensor in host memory
//   - Shape, DataType: core type definitions
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
//	y, err := tensor.FromSlice([]int64{1, 2, 3}, tensor.Shape{3})
package tensor

import (
	"github.com/born-ml/prep/internal/tensor"
)

// Type aliases for public API

// DType is a constraint for tensor data types.
// Supported types: float32, float64, int32, int64.
type DType = tensor.DType

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Float32 DataType = tensor.Float32
	Float64 DataType = tensor.Float64
	Int32   DataType = tensor.Int32
	Int64   DataType = tensor.Int64
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3} represents a 2D tensor with dimensions 2×3.
type Shape = tensor.Shape

// Tensor is a generic dense tensor in host memory.
//
// T is the data type (float32, float64, int32, int64).
type Tensor[T DType] = tensor.Tensor[T]

// Creation functions

// Zeros creates a tensor filled with zeros.
//
// Example:
//
//	x := tensor.Zeros[float32](tensor.Shape{2, 3})
func Zeros[T DType](shape Shape) *Tensor[T] {
	return tensor.Zeros[T](shape)
}

// FromSlice creates a tensor from a Go slice.
//
// Example:
//
//	data := []float32{1, 2, 3, 4, 5, 6}
//	x, err := tensor.FromSlice(data, tensor.Shape{2, 3})
func FromSlice[T DType](data []T, shape Shape) (*Tensor[T], error) {
	return tensor.FromSlice[T](data, shape)
}

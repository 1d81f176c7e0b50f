// Package kernels holds the reference float32 implementations of the leaf
// elementwise operators. They carry no scheduling or graph concerns; the
// operator registry points at them so a lowered program can be evaluated
// on the host.
package kernels

import "math"

// Unary applies an elementwise function to src, writing into dst. dst and
// src must have equal length.
type Unary func(dst, src []float32)

// Binary applies an elementwise function pairwise to a and b, writing into
// dst. All three slices must have equal length.
type Binary func(dst, a, b []float32)

// Relu writes max(0, x) for every element of src.
func Relu(dst, src []float32) {
	for i, x := range src {
		if x > 0 {
			dst[i] = x
		} else {
			dst[i] = 0
		}
	}
}

// Sigmoid writes 1/(1+exp(-x)) for every element of src.
func Sigmoid(dst, src []float32) {
	for i, x := range src {
		dst[i] = float32(1.0 / (1.0 + math.Exp(float64(-x))))
	}
}

// Tanh writes tanh(x) for every element of src.
func Tanh(dst, src []float32) {
	for i, x := range src {
		dst[i] = float32(math.Tanh(float64(x)))
	}
}

// Add writes a+b elementwise.
func Add(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] + b[i]
	}
}

// Mul writes a*b elementwise.
func Mul(dst, a, b []float32) {
	for i := range a {
		dst[i] = a[i] * b[i]
	}
}

// Softmax writes the softmax of src treated as a single vector. The max is
// subtracted before exponentiation to keep the sum finite.
func Softmax(dst, src []float32) {
	if len(src) == 0 {
		return
	}
	max := src[0]
	for _, x := range src[1:] {
		if x > max {
			max = x
		}
	}
	var sum float64
	for i, x := range src {
		e := math.Exp(float64(x - max))
		dst[i] = float32(e)
		sum += e
	}
	for i := range dst {
		dst[i] = float32(float64(dst[i]) / sum)
	}
}

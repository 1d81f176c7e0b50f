package kernels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelu(t *testing.T) {
	src := []float32{-2, -0.5, 0, 0.5, 3}
	dst := make([]float32, len(src))
	Relu(dst, src)
	assert.Equal(t, []float32{0, 0, 0, 0.5, 3}, dst)
}

func TestSigmoid(t *testing.T) {
	src := []float32{0, 2, -2}
	dst := make([]float32, len(src))
	Sigmoid(dst, src)

	assert.InDelta(t, 0.5, dst[0], 1e-6)
	assert.InDelta(t, 0.880797, dst[1], 1e-5)
	assert.InDelta(t, 0.119203, dst[2], 1e-5)
	// Symmetry around zero.
	assert.InDelta(t, 1.0, dst[1]+dst[2], 1e-6)
}

func TestTanh(t *testing.T) {
	src := []float32{0, 1, -1}
	dst := make([]float32, len(src))
	Tanh(dst, src)

	assert.InDelta(t, 0.0, dst[0], 1e-6)
	assert.InDelta(t, 0.761594, dst[1], 1e-5)
	assert.InDelta(t, -0.761594, dst[2], 1e-5)
}

func TestAddMul(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{4, 5, 6}
	dst := make([]float32, 3)

	Add(dst, a, b)
	assert.Equal(t, []float32{5, 7, 9}, dst)

	Mul(dst, a, b)
	assert.Equal(t, []float32{4, 10, 18}, dst)
}

func TestSoftmax(t *testing.T) {
	src := []float32{1, 2, 3}
	dst := make([]float32, len(src))
	Softmax(dst, src)

	var sum float32
	for _, x := range dst {
		sum += x
	}
	assert.InDelta(t, 1.0, sum, 1e-6)
	assert.Less(t, dst[0], dst[1])
	assert.Less(t, dst[1], dst[2])
}

func TestSoftmaxLargeInputsStayFinite(t *testing.T) {
	src := []float32{1000, 1000, 1000}
	dst := make([]float32, len(src))
	Softmax(dst, src)

	for _, x := range dst {
		assert.InDelta(t, 1.0/3.0, x, 1e-6)
	}
}

func TestSoftmaxEmpty(t *testing.T) {
	assert.NotPanics(t, func() { Softmax(nil, nil) })
}

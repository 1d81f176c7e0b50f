package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modelSrc = `
model "tiny" {
  input "data" {
    dims = [1, 4]
  }
  input "w" {
    dims = [4, 4]
  }

  node "fc" "MatMul" {
    inputs = ["data", "w"]
  }
  node "act" "Relu" {
    inputs = ["fc"]
  }

  output "act" {}
}
`

const targetSrc = `
target "unit" {
  resource "mac" {
    units = 1
  }
  resource "alu" {
    units = 2
  }

  operator "MatMul" {
    resource = "mac"
    cycles   = 32
  }

  default_operator {
    resource = "alu"
    cycles   = 1
  }
}
`

func writeFile(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestLoadSeparateFiles(t *testing.T) {
	dir := t.TempDir()
	modelPath := writeFile(t, dir, "tiny.hcl", modelSrc)
	targetPath := writeFile(t, dir, "unit.hcl", targetSrc)

	model, err := NewLoader().Load(context.Background(), modelPath, targetPath)
	require.NoError(t, err)

	require.NotNil(t, model.Arch)
	assert.Equal(t, "tiny", model.Arch.Name)
	require.Len(t, model.Arch.Nodes, 2)
	assert.Equal(t, "MatMul", model.Arch.Nodes[0].Op)
	assert.Equal(t, []string{"data", "w"}, model.Arch.Nodes[0].Inputs)
	assert.Equal(t, []string{"act"}, model.Arch.Outputs)

	require.NotNil(t, model.Target)
	assert.Equal(t, "unit", model.Target.Name)
	require.Len(t, model.Target.Resources, 2)
	assert.Equal(t, 2, model.Target.Resources[1].Units)
	require.NotNil(t, model.Target.Default)
	assert.Equal(t, "alu", model.Target.Default.Resource)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "tiny.hcl", modelSrc)
	writeFile(t, dir, "unit.hcl", targetSrc)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	assert.NotNil(t, model.Arch)
	assert.NotNil(t, model.Target)
}

func TestLoadAttrs(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "conv.hcl", `
model "c" {
  input "data" {
    dims = [1, 1, 8, 8]
  }
  input "w" {
    dims = [4, 1, 3, 3]
  }
  node "conv" "Conv" {
    inputs  = ["data", "w"]
    strides = [1, 1]
    pads    = [1, 1]
  }
  output "conv" {}
}
`)
	model, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	attrs := model.Arch.Nodes[0].Attrs
	require.NotNil(t, attrs)
	assert.Equal(t, []int{1, 1}, attrs["strides"])
	assert.Equal(t, []int{1, 1}, attrs["pads"])
	assert.NotContains(t, attrs, "kernel_shape")
}

func TestLoadErrors(t *testing.T) {
	t.Run("no model block", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "unit.hcl", targetSrc)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "no model block")
	})

	t.Run("duplicate model block", func(t *testing.T) {
		dir := t.TempDir()
		a := writeFile(t, dir, "a.hcl", modelSrc)
		b := writeFile(t, dir, "b.hcl", modelSrc)
		_, err := NewLoader().Load(context.Background(), a, b)
		assert.ErrorContains(t, err, "duplicate model block")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, "bad.hcl", `model "x" {`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.Error(t, err)
	})
}

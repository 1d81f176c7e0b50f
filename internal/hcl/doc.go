// Package hcl implements the config.Loader interface for HCL description
// files. It parses .hcl files with hclparse, decodes them into the schema
// structs via gohcl, and translates the result into the format-agnostic
// config model.
package hcl

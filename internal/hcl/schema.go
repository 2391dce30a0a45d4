package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is a struct used to decode all possible top-level blocks from any file.
type fileRoot struct {
	Components []*ComponentBlock `hcl:"component,block"`
	Logs       []*LogBlock       `hcl:"log,block"`
	Remain     hcl.Body          `hcl:",remain"`
}

// ComponentBlock is the HCL schema of a component manifest:
//
//	component "example.Color" {
//	  description = "RGBA color"
//	  type        = object({ r = number, g = number, b = number, a = number })
//	  fallback    = { r = 255, g = 255, b = 255, a = 255 }
//	}
type ComponentBlock struct {
	Key         string         `hcl:"key,label"`
	Description string         `hcl:"description,optional"`
	Type        hcl.Expression `hcl:"type,optional"`
	Fallback    hcl.Expression `hcl:"fallback,optional"`
}

// LogBlock is the HCL schema of logged data for one entity:
//
//	log "/points" {
//	  timeline = "frame"
//	  at       = 3
//	  component "example.Color" {
//	    values = [{ r = 255, g = 0, b = 0, a = 255 }]
//	  }
//	}
//
// Without a timeline the data is static.
type LogBlock struct {
	Path       string               `hcl:"path,label"`
	Timeline   string               `hcl:"timeline,optional"`
	At         int64                `hcl:"at,optional"`
	Components []*LogComponentBlock `hcl:"component,block"`
}

// LogComponentBlock holds the batch of one component in a log block.
type LogComponentBlock struct {
	Key    string         `hcl:"key,label"`
	Values hcl.Expression `hcl:"values"`
}

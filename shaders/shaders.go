package shaders

import (
	_ "embed"
)

//go:embed uber.wgsl
var UberWGSL string

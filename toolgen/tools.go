//go:build tools
// +build tools

package toolgen

import (
	_ "github.com/QuangTung97/otelwrap"
	_ "github.com/matryer/moq"
	_ "github.com/mgechev/revive"
)

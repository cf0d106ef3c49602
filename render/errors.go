package render

import "errors"

// ErrRenderOverflow indicates the rendered text would exceed the
// configured MaxBytes ceiling.
var ErrRenderOverflow = errors.New("render: output exceeds configured size limit")

package extpath

import "errors"

// ErrUnknownModule indicates the module has no base directory.
var ErrUnknownModule = errors.New("unknown module")

package codegen

import "errors"

// ErrMalformed marks an instruction stream whose shape the earlier
// stages should have made impossible. Seeing it means a defect, not a
// user error; it is still returned rather than panicking.
var ErrMalformed = errors.New("malformed instruction stream")

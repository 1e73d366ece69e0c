package point

import "github.com/emc2/safecurves"

// ErrInvalidPoint is safecurves.ErrInvalidPoint; compare with errors.Is.
var ErrInvalidPoint = safecurves.ErrInvalidPoint

// Package elligator implements the Elligator-1 (Edwards, p ≡ 3 mod 4) and
// Elligator-2 (Montgomery, p ≡ 5 mod 8) hash-to-point maps of spec.md §4.5
// and §4.6.
package elligator

import "github.com/emc2/safecurves"

// ErrInvalidHashInput is raised by Decode when the scalar hits the map's
// exceptional set (t = -1 for Elligator-1, 1+2r² = 0 for Elligator-2).
var ErrInvalidHashInput = safecurves.ErrInvalidHashInput

// ErrEncodeRefused is raised by Encode when CanEncode(P) is false.
var ErrEncodeRefused = safecurves.ErrEncodeRefused

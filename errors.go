package safecurves

import "errors"

// The three error kinds spec.md §7 defines for the whole core. Subpackages
// (point, elligator) re-export these same values under their own names
// rather than declaring new ones, and return them unwrapped, so a
// subpackage error and the value here compare equal under errors.Is.
var (
	// ErrInvalidPoint is raised by decompression, FromEdwards/FromMontgomery
	// when coordinates do not satisfy the curve equation, and by
	// birational conversion at 2-torsion singularities.
	ErrInvalidPoint = errors.New("safecurves: invalid point")

	// ErrInvalidHashInput is raised by Elligator decode when the input
	// hits the map's exceptional set.
	ErrInvalidHashInput = errors.New("safecurves: invalid hash input")

	// ErrEncodeRefused is raised by Elligator encode when canEncode(P) is
	// false.
	ErrEncodeRefused = errors.New("safecurves: encode refused")
)

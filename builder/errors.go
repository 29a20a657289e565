// SPDX-License-Identifier: MIT
// Package: roadpath/builder
//
// errors.go — sentinel errors. Constructors wrap them with the method name
// and offending parameters; callers branch with errors.Is.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation is the prefix of panics raised by invalid option values.
var ErrOptionViolation = errors.New("builder: invalid option value")

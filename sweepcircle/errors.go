// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package sweepcircle

import "errors"

// ErrSeedSearchFailed is returned by New when the bounded seed-search retry
// loop never finds a center strictly inside its three closest points —
// input degenerate enough (collinear or near-collinear) that no retry
// recovers.
var ErrSeedSearchFailed = errors.New("sweepcircle: seed search failed")

// ErrTooFewPoints is returned by New when fewer than three points are
// given; a seed triangle cannot exist below that.
var ErrTooFewPoints = errors.New("sweepcircle: fewer than three points")

// ErrCapacityExceeded marks a programmer error: an attachment or flip tried
// to grow the half-edge arena past its preallocated 2N-5 triangles.
var ErrCapacityExceeded = errors.New("sweepcircle: half-edge arena capacity exceeded")

// ErrInvariantViolated marks a programmer error: a predicate that the
// sweep loop asserts about its own bookkeeping (e.g. that the hull edge
// located for the next point actually sees it) failed.
var ErrInvariantViolated = errors.New("sweepcircle: invariant violated")

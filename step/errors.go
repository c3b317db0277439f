// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package step

import "errors"

// ErrMalformedRecord is wrapped into the per-line error multierr
// accumulates when a "#id = KEYWORD(args);" record can't be tokenized at
// all (missing '=', unbalanced parens, a non-integer id).
var ErrMalformedRecord = errors.New("step: malformed record")

// ErrMalformedArgument is wrapped when a record's keyword is recognized
// but an individual argument doesn't parse as the type that keyword
// expects (e.g. a non-numeric radius).
var ErrMalformedArgument = errors.New("step: malformed argument")

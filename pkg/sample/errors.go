// SPDX-License-Identifier: Apache-2.0

package sample

import "errors"

// ErrInvalidInput is the root of the package error taxonomy. Every
// construction or trimming failure wraps it, so callers can check with
// errors.Is regardless of which operation rejected the input.
var ErrInvalidInput = errors.New("invalid input")

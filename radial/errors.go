// SPDX-License-Identifier: MIT

package radial

import "errors"

// ErrQuantumNumbers is returned for n < 1 or L outside [0, n).
var ErrQuantumNumbers = errors.New("radial: invalid quantum numbers")

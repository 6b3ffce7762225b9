// SPDX-License-Identifier: MIT

package table

import "errors"

// ErrMaxN is returned by Generate when the table dimension is below 1.
var ErrMaxN = errors.New("table: max n must be at least 1")

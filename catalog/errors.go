// SPDX-License-Identifier: MIT

// Package catalog: sentinel errors.
package catalog

import "errors"

// ErrUnknownScheme is returned when a name is not in the catalog.
var ErrUnknownScheme = errors.New("catalog: unknown scheme")

// ErrDuplicateScheme is returned when two files define the same scheme name.
var ErrDuplicateScheme = errors.New("catalog: duplicate scheme")

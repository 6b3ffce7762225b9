// SPDX-License-Identifier: MIT

// Package table generates the C++ source holding precomputed radial data
// (nodes, maxima and extents) for every orbital n = 1..MaxN, L = 0..n−1.
//
// Generation runs in two phases:
//
//  1. Generate evaluates every (n, L) cell concurrently (bounded by
//     Options.Workers). Each cell writes only its own slot, so no locking
//     is needed; the first failure cancels the remaining cells.
//  2. Tables.WriteTo emits the source deterministically through an
//     indent.Writer:
//
//	/* license */
//
//	#include "radial_data.hh"
//
//	const double radial_nodes[16][16][16] = {
//	  // n == 1
//	  {
//	    // L == 0
//	    {}
//	  },
//	  ...
//	};
//
// Three-level tables (nodes, maxima) hold a list per cell; two-level tables
// (extent, extent2) hold one value per cell. Lists shorter than MaxN are
// zero-filled by the C++ compiler, and consumers treat 0 as end of data.
package table

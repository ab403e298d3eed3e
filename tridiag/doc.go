// SPDX-License-Identifier: MIT

// Package tridiag solves linear systems whose matrix has non-zero entries only
// on the main diagonal and its two immediate neighbours.
//
// What is inside:
//
//   - System — three coefficient slices (Sub, Diag, Super) of length n.
//     Sub[0] and Super[n-1] lie outside the matrix and are ignored.
//   - Thomas — direct O(n) elimination (forward sweep + back substitution).
//   - SOR    — successive over-relaxation, an iterative Gauss–Seidel variant
//     bounded by a fixed sweep budget.
//
// Both solvers satisfy the Solver interface and are interchangeable for any
// diagonally dominant system. Thomas is exact up to rounding and strictly
// cheaper; SOR returns its best iterate when the sweep budget runs out and
// reports that through Stats.Converged instead of an error.
//
// Legacy packed storage (3 doubles per row: a[3i] sub, a[3i+1] main,
// a[3i+2] super) is accepted through FromPacked.
//
// Solvers keep scratch buffers between calls and are therefore NOT safe for
// concurrent use; allocate one per goroutine.
package tridiag

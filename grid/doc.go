// Package grid holds the square lattice of resistance values on which an
// invasion cluster grows.
//
// What:
//
//   - Grid is an odd-sized square of immutable integer resistances in [1, spread]
//     plus an explicit invaded flag per cell.
//   - Coord is a comparable (Row, Col) value, usable as a map key.
//   - Neighbors uses 4-connectivity in a fixed order: up, left, down, right.
//   - InvadedComponents finds 4-connected components of the invaded set.
//
// Why:
//
//   - Keeping the invaded state separate from the values means resistances stay
//     queryable after invasion (e.g. for the invasion threshold estimate), and a
//     legitimately low value can never be mistaken for an invaded marker.
//
// Complexity:
//
//   - New, FromValues:      O(N²) time and memory, N = side length.
//   - MarkInvaded, IsInvaded, IsOnBoundary, Neighbors: O(1).
//   - InvadedComponents:    O(N²).
//
// Errors:
//
//   - ErrInvalidParameter: size is not a positive odd integer, spread < 1, nil fill.
//   - ErrValueOutOfRange:  a fill function produced a value outside [1, spread].
//   - ErrOutOfBounds:      a coordinate lies outside the grid.
//   - ErrAlreadyInvaded:   MarkInvaded was called twice on the same cell.
package grid

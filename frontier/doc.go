// Package frontier maintains the invadable boundary of a growing invasion
// cluster: every not-yet-invaded cell adjacent to the cluster, keyed by its
// resistance.
//
// Overview:
//
//   - Cells are kept in buckets, one per distinct resistance level.
//   - A min-heap over the non-empty levels acts as the cursor on the smallest
//     bucket, so selection never scans the grid.
//   - A membership index (coord → level) makes Insert idempotent: a cell exposed
//     by several invaded neighbours is tracked exactly once.
//   - RemoveAndFetchMinimum picks uniformly at random among all cells tied at
//     the minimum level, not first-found and not insertion order.
//
// Complexity:
//
//   - Insert:                O(1) for an existing level, O(log L) for a new one.
//   - RemoveAndFetchMinimum: O(1) within a level, O(log L) when a level empties.
//   - Memory:                O(F + L), F = tracked cells, L = distinct levels.
//
// Errors (sentinel):
//
//   - ErrNilChecker / ErrNilSource: missing collaborators at construction.
//   - ErrInvariantViolation: Insert of a cell that is already invaded.
//   - ErrInvalidValue: Insert with a resistance below 1.
//   - ErrEmpty: RemoveAndFetchMinimum on an empty frontier. During a growth run
//     this signals a connectivity defect and must be treated as fatal.
//
// Thread safety:
//
//   - A Frontier is owned by a single run and is not safe for concurrent use.
package frontier

// Package grid owns the hex cells that the pathfinder walks over.
//
// What:
//
//   - Grid maps a cube coordinate to a Cell. Coordinates are unique keys; a missing
//     key means "not part of the grid", never "impassable".
//   - Each Cell carries a Terrain class, the move cost looked up from a CostTable,
//     and a weight budget (CurrentWeight / MaxWeightCapacity).
//   - Traversal queries (CellAt, NeighborsPresent, AcceptsWeight, MoveCost, MaxNodes)
//     are what package astar consumes.
//   - Mutations (SetTerrain, CycleTerrain, AdjustWeight, SetCapacity, Expand,
//     Randomize) belong to the surrounding simulation.
//
// Weight acceptance:
//
//	A cell accepts a unit of weight w iff its terrain is not impassable AND
//	either CurrentWeight + w <= MaxWeightCapacity, or w < 2. The second branch is
//	the overload exception: very light units may always squeeze in.
//
// Move cost:
//
//	Passable classes cost a positive integer from the CostTable. Impassable
//	classes cost InfiniteCost. Terrain Impassable is always impassable no matter
//	what the table says.
//
// Thread safety:
//
//	Every Grid method takes the grid's RWMutex, so individual calls never race.
//	A search issues many calls, so a search that must see one consistent state
//	while the simulation keeps mutating should run against Snapshot().
//
// Errors:
//
//   - ErrInvalidCoord     coordinate fails q + r + s == 0.
//   - ErrDuplicateCell    AddCell on a coordinate that already has a cell.
//   - ErrCellNotFound     mutation of a coordinate with no cell.
//   - ErrBadRadius        negative radius for NewHexagon or Expand.
//   - ErrNegativeCapacity SetCapacity / WithDefaultCapacity below zero.
//   - ErrNonPositiveCost  CostTable entry < 1.
//   - ErrMissingCost      CostTable lacks a passable terrain class.
//   - ErrUnknownTerrain   ParseTerrain on an unrecognized name.
package grid

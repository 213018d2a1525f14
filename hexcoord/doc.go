// Package hexcoord provides cube-coordinate arithmetic for hexagonal grids.
//
// What:
//
//   - Coord is a cube coordinate (Q, R, S) with the invariant Q + R + S == 0.
//   - Distance is the hex "Manhattan" distance, used both to shape grids and as the
//     A* heuristic in package astar.
//   - Neighbors, Ring and Disc enumerate cells around a coordinate without knowing
//     whether those cells exist; existence filtering belongs to package grid.
//
// Directions:
//
//	The six unit vectors, in the fixed order used everywhere in this module:
//
//	  0: (+1,-1, 0)   1: (+1, 0,-1)   2: ( 0,+1,-1)
//	  3: (-1,+1, 0)   4: (-1, 0,+1)   5: ( 0,-1,+1)
//
// Complexity:
//
//   - IsValid, Distance, Neighbors: O(1).
//   - Ring(radius): O(radius), Disc(radius): O(radius²).
//
// All functions are pure integer arithmetic; there are no error conditions.
package hexcoord

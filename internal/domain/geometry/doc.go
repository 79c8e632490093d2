// Package geometry provides the plane primitives the watchman kernel is built on.
//
// What:
//
//   - AreParallel / Intersect: exact-slope parallelism and line intersection.
//   - TriangleArea / QuadArea: determinant and Shoelace magnitudes.
//   - OrderByAngle / IsSimpleQuad: cyclic ordering and crossing checks for
//     witness quadrilaterals.
//
// Parallelism uses exact float comparison; there is no epsilon. Lines whose
// slopes differ in the last bit intersect far away, and that is a valid result.
//
// Complexity: every function is O(1) except OrderByAngle, O(k log k) for k points.
package geometry

// Package tmfg builds the Triangulated Maximally Filtered Graph, a faster
// sibling of the greedy planar filtration in package pmfg.
//
// Instead of testing arbitrary candidates for planarity, the construction
// grows a planar triangulation directly: it seeds a tetrahedron on the four
// nodes with the highest total proximity, then repeatedly picks the
// unplaced node with the maximum gain (the sum of its proximities to some
// triangular face's three corners) and inserts it into that face, splitting
// it into three. Every step preserves planarity by construction, and the
// finished graph carries exactly 3n-6 edges for n >= 4.
//
// The result is generally close to, but not identical with, the greedy
// filtration: the triangulation is chordal and always maximal, while the
// greedy pass can stop short of the bound on sparse input.
//
// Non-finite matrix entries contribute zero gain and record a zero weight
// on any forced triangulation edge; they are counted like the dropped
// entries of proximity.FromMatrix. For n below 4 the triangulation
// degenerates to the complete graph, which is planar outright.
//
// Complexity: O(n^3) worst case for the plain max-gain scan; the graph has
// O(n) faces and each insertion rescans unplaced nodes against them.
package tmfg

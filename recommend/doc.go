// Package recommend implements the recommender facade (spec §4.5): for
// each satisfied template in a fulfillment result, it re-matches the
// template's original specification against the whole catalog, drops
// courses already assigned, ranks the remainder by replacement-binding
// count, and optionally defers to an external Scorer for a final
// reordering.
package recommend

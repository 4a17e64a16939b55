// Package engine implements the fulfillment engine (spec §4.4): for
// each combination of wildcard-resolved templates it fills
// non-replacement templates greedily, builds the assignment graph,
// steals courses along BFS paths, fills replacement templates, runs the
// replacement-trade procedure twice (once unrestricted, once forcing
// steals past each template's own importance), and scores the result.
// The combination with the best score — fewest unfulfilled templates,
// then most total bound courses — is returned.
//
// The engine is single-threaded and synchronous (spec §5): no operation
// suspends, and callers needing a deadline should wrap Fulfillment in
// their own context timeout rather than expect internal cancellation.
package engine

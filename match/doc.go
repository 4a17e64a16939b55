// Package match implements the template matcher (spec §4.2): it
// evaluates a Template's specifications against a pool of courses and
// expands '*' wildcard atoms into concrete, wildcard-free template
// variants, one FulfillmentStatus per variant.
//
// Contract: for any template t and course pool p, every
// FulfillmentStatus Candidates(t, p) returns has a wildcard-free
// template and a fulfillment set that is a subset of p.
package match

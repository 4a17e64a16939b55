// Package degreepath implements the degree-fulfillment engine: matching
// a user's taken courses against a degree's requirement templates so
// that the number of unfilled required templates is minimized, and,
// secondarily, the number of filled templates is maximized.
//
// The data model lives in catalog, attributes in attribute, the
// specification grammar in specexpr, wildcard-aware template matching
// in match, the BFS-reachable assignment graph in assign, the
// fulfillment/steal/trade pipeline in engine, and post-fulfillment
// course ranking in recommend. jsonimport, session, semantic and
// cmd/gradctl are peripheral collaborators around that core: JSON
// catalog loading, the per-user command queue, an optional OpenAI-
// embedding recommendation scorer, and a cobra/viper CLI, respectively.
package degreepath

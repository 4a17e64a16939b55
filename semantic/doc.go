// Package semantic implements the optional External Scorer contract of
// spec §6.5 as a concrete adapter: semantic.Client ranks a recommender's
// candidate courses by cosine similarity between an OpenAI embedding of
// the user's custom tags and an embedding of each course's text. It
// satisfies recommend.Scorer but is never imported by engine or
// recommend themselves — only by cmd/gradctl, preserving the core's
// "the scorer is opaque and optional" contract.
//
// Embeddings are cached in an in-memory sync.Map keyed by the text that
// produced them, for the lifetime of the process only. Spec's Non-goals
// forbid a *persisted* embedding cache, not caching itself (see
// SPEC_FULL.md §11.4); nothing here writes to disk.
package semantic

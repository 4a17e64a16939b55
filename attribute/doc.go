// Package attribute implements the dotted, case-insensitive attribute
// model shared by courses and templates.
//
// An attribute is a '.'-separated path such as "concentration.ai" or
// "cross_listed.cs 4100". A Set stores attributes in a small prefix trie
// keyed on segment sequence, giving O(1) exact lookup, O(k) head lookup
// (k = number of segments in the head), and an iterator-friendly Next
// for enumerating the segments that follow a given head.
//
// Three segment values are treated as "absent": NA, ANY and -1
// (case-insensitive). A template atom built from an absent segment
// imposes no constraint; see package specexpr.
package attribute

// Package catalog implements the data model of spec §3: Course, Catalog,
// Template, Degree, FulfillmentStatus and a per-user Schedule.
//
// A Course's identity is the triple (subject, id, name); its attribute
// mapping is otherwise an attribute.Set. A Catalog owns the set of
// courses (keyed by Course.Key()) and the set of degrees (keyed by
// name); courses and degrees are mutable only while a Catalog is being
// built (spec §5) and are treated as immutable afterward by every
// reader in this module.
package catalog

// Package xidx models hierarchical metadata describing scientific data
// grids, and maps it to and from XIDX documents.
//
// A document is a tree rooted at a [Group].  Groups hold sub groups,
// [Domain]s, [Variable]s and [Attribute]s.  A domain is one of
// [HyperSlabDomain], [ListDomain], [MultiAxisDomain], [SpatialDomain] or
// [RangeDomain]; its data arrays are described by [DataItem]s, whose
// payload is either inline text or held in an external source.
//
// Every node can [Node.Serialize] itself into an xnode.Node and
// [Node.Deserialize] itself from one.  Deserializing into an existing
// tree reuses data items by position, so that pointers held by callers
// remain valid.
//
// Trees are not safe for concurrent mutation.
package xidx

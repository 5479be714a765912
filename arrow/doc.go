/*
Package arrow describes the data types, fields and schemas of a small
in-memory columnar engine modelled on Apache Arrow.

# Basics

The fundamental data structure is an Array (package array), which holds a
sequence of values of one type together with a validity bitmap marking which
entries are null. Arrays are produced by builders, are immutable once built,
and are reference counted so several tables or struct columns may share them.

The set of element types is closed: booleans, the signed and unsigned
integers Int32, Int64 and Uint64, the floating point types Float32 and
Float64, UTF-8 strings, and structs of other types. Every array kind can be
matched exhaustively by switching on DataType.ID.

A Schema is an ordered list of named, typed fields. A Table (package array)
is a set of equal-length columns validated against a Schema. The compute
package applies null-aware elementwise kernels to numeric arrays.
*/
package arrow

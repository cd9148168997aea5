// Package wellset provides WellSet, an ordered, deduplicated collection of
// wells with set algebra, sorted-set navigation and rank-based views.
//
// What:
//
//   - Wells are kept unique by position and totally ordered row-major.
//   - Set algebra: Add, Remove, Replace (upsert), Retain (intersection), Contains.
//   - Navigation: First/Last, Ceiling/Floor/Higher/Lower, Head/Tail/SubSet by
//     value, and by rank (0-based position in sorted order).
//   - Filters: Row(n), Column(n), lookups by well, set or delimited ID list.
//   - Ordering between sets (label, then size, then members) so sets can key
//     ordered result maps.
//
// Failure policy:
//
//   - Single-well primitives (AddWell, RemoveWell, ReplaceWell, RemoveAt)
//     return sentinel errors.
//   - Batch operations (Add, Remove, Replace, AddSet, ...) apply every item they
//     can, log each rejected item through the set's slog.Logger, and return
//     false if anything was rejected. Partial application is intended.
//   - Delimited-ID variants additionally return the parse error of a malformed
//     list; nothing is applied in that case.
//
// Storage:
//
//   - A B-tree (github.com/google/btree) is the single source of truth. Rank
//     views count along an in-order walk; no auxiliary index is kept, so
//     memory stays linear in the set size.
//   - Views (HeadSet, SubSetAt, Row, ...) are new sets sharing the member
//     wells; Clone and FromSet deep-copy them.
//
// Concurrency:
//
//   - All methods are safe for concurrent use. Operations taking another set
//     snapshot it before locking the receiver.
//
// Errors:
//
//   - ErrNilWell, ErrNilSet, ErrDuplicateWell, ErrWellNotFound,
//     ErrOutOfRange, ErrEmptySet.
package wellset

// Package dashboard aggregates the collections behind the admin, teacher and
// student dashboards.
//
// Each aggregator fetches a fixed batch concurrently and commits the result
// as one state value. The admin and teacher aggregators tolerate partial
// failure: a failed fetch leaves its collection empty and adds a message. The
// student aggregator succeeds or fails as a whole. Derived views are pure
// functions of the committed state and are recomputed on every call.
//
// A generation counter guards every load: results of a load overtaken by
// Reset or Bind are dropped.
package dashboard

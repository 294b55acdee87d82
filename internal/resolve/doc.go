// Package resolve reconstructs containment, constructor documentation and
// inheritance over a loaded doclet store.
//
// Each exported function is one pipeline stage. Stages mutate records in place and
// visit them in the store's stable file/line order, so repeated runs over the same
// input produce the same names.
package resolve

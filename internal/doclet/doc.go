// Package doclet defines the symbol records ("doclets") consumed by classydoc and the
// arena-style Store that holds them.
//
// A Store is loaded once per run and then mutated in place by the resolution stages.
// Records refer to their logical parent by longname (MemberOf) rather than by pointer,
// so the table never holds ownership cycles.
package doclet

/*
Package svec implements a bounded, inline sequence container.

An SVec[T] holds at most a fixed number of values of T in a backing Go array
that is allocated once, at construction, and never grows. Unlike a Go slice,
an SVec never reallocates: every element lives inside the struct's own
storage for its whole lifetime, and inserting past capacity fails instead of
silently growing the backing store.

Go has no way to parametrize an array's length by a type parameter, so the
backing array size is the package constant MaxCapacity; an individual SVec's
effective capacity is a value in [1, MaxCapacity] fixed at construction and
never changed afterwards. This mirrors the way a fixed-size node buffer with
a smaller, construction-time logical length is used elsewhere in B-tree-like
containers: the array is sized once for the worst case, and a view over a
prefix of it tracks how much of it is actually live.

SVec is the element (and, inside package blist, the child-pointer) storage
for each node of a blist.BList. It has no dependency on blist and is usable
on its own as a capacity-bounded alternative to a slice.
*/
package svec

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

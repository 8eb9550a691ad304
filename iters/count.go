package iters

// ConsumeAndCount consumes the iterator and returns the count of items in the iterator.
func ConsumeAndCount(it NopIterator) uint {
	defer it.Close()

	var count uint
	for it.Rewind(); it.Valid(); it.Next() {
		count++
	}

	return count
}

// NopIterator is an iterator that only implements the Rewind, Valid, and Next methods.
type NopIterator interface {
	Rewind()
	Valid() bool
	Next()
	Close()
}

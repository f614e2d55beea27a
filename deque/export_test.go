package deque

import "fmt"

// CheckLayout verifies the chunk layout invariants: no empty chunk, no chunk
// above segmentSize, full middle chunks, and totalSize equal to the chunk sum.
func (d *Deque[T]) CheckLayout() error {
	sum := 0
	for i, c := range d.chunks {
		n := c.Len()
		switch {
		case n == 0:
			return fmt.Errorf("chunk %d is empty", i)
		case n > d.segmentSize:
			return fmt.Errorf("chunk %d holds %d > %d", i, n, d.segmentSize)
		case i > 0 && i < len(d.chunks)-1 && n != d.segmentSize:
			return fmt.Errorf("middle chunk %d holds %d, want %d", i, n, d.segmentSize)
		}
		sum += n
	}
	if sum != d.totalSize {
		return fmt.Errorf("chunk sum %d != totalSize %d", sum, d.totalSize)
	}

	return nil
}

// HeadGap exposes the unused leading slots of the first chunk.
func (d *Deque[T]) HeadGap() int { return d.headGap() }

package state

// revision is a logical clock over gallery mutations. The renderer compares
// revisions to skip redrawing an unchanged gallery.
type revision uint64

func (r *revision) tick() uint64 {
	*r++
	return uint64(*r)
}

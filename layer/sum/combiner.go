package sum

// Put inserts a boolean at position n.
func (f *Sum) Put(n int, v bool) {
	f.vec[n].Store(v)
}

// Len reports the number of features, the tensor size without the
// collapsed dimension.
func (f *Sum) Len() int {
	return len(f.vec) / int(f.count)
}

// Feature returns the number of set bits along the collapsed dimension at
// the n-th remaining position.
func (f *Sum) Feature(n int) (o uint32) {
	base := uint(n)%f.step + (uint(n)/f.step)*f.step*f.count
	for j := uint(0); j < f.count; j++ {
		if f.vec[base+j*f.step].Load() {
			o++
		}
	}
	return
}

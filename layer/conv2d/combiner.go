package conv2d

// Put inserts a boolean at position n.
func (f *Conv2D) Put(n int, v bool) {
	f.vec[n] = v
}

// Len reports the number of window positions over all planes.
func (f *Conv2D) Len() int {
	return (f.width - f.subwidth + 1) * (f.height - f.subheight + 1) * f.repeat
}

// Feature returns the n-th feature from the combiner. Features run over
// window positions row by row, plane after plane.
func (f *Conv2D) Feature(n int) (o uint32) {
	across := f.width - f.subwidth + 1
	block := across * (f.height - f.subheight + 1)
	nin := n % block
	nadd := (n / block) * f.width * f.height
	ny := nin / across
	nx := nin % across

	var shift int
	for i := 1; i <= f.shift; i <<= 1 {
		shift++
	}

	for i := 0; i < f.subheight; i++ {
		for j := 0; j < f.subwidth; j++ {
			if f.shift != 0 && (i*f.subwidth+j)%f.shift == 0 {
				o <<= shift
			}
			if f.vec[nadd+f.width*(ny+i)+nx+j] {
				o++
			}
		}
	}
	return
}

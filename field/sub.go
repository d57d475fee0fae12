package field

// Sub returns self - other. Subtraction is linear and free.
func (f *Field) Sub(other *Field) *Field {
	res := f.Clone()
	res.SubAssign(other)
	return res
}

// SubAssign replaces self with self - other.
func (f *Field) SubAssign(other *Field) {
	f.lc = f.lc.Sub(other.lc)
	f.mode = f.mode.Combine(other.mode)
}

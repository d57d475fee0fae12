package field

// Add returns self + other. Addition is linear: the linear combinations
// merge and no variable or constraint is consumed.
func (f *Field) Add(other *Field) *Field {
	res := f.Clone()
	res.AddAssign(other)
	return res
}

// AddAssign replaces self with self + other.
func (f *Field) AddAssign(other *Field) {
	f.lc = f.lc.Add(other.lc)
	f.mode = f.mode.Combine(other.mode)
}

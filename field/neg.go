package field

// Neg returns -self. Negation flips every coefficient in place and is free.
func (f *Field) Neg() *Field {
	return &Field{env: f.env, mode: f.mode, lc: f.lc.Neg()}
}

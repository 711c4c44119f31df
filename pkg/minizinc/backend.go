package minizinc

// Backend selects the solver the minizinc toolchain dispatches to. Options is
// a reserved slot for backend flags, passed through as "--<key> <value>"
// pairs.
type Backend struct {
	Name    string
	Options map[string]string
}

func NewGecodeBackend() Backend {
	return Backend{Name: "gecode"}
}

func NewChuffedBackend() Backend {
	return Backend{Name: "chuffed"}
}

func NewCbcBackend() Backend {
	return Backend{Name: "cbc"}
}

func NewOrtoolsBackend() Backend {
	return Backend{Name: "or-tools"}
}

package register

// Spec describes how a statically known register is decoded: the name the
// device documentation gives it, the interpretation of the raw word, and the
// scaling applied on top.
type Spec struct {
	Name    string
	Kind    Kind
	Scaling Scaling
}

// Lookup returns the static definition for an identity. The tables are
// populated at init and never mutated afterwards; identities outside them are
// still cacheable, they just have no decode metadata.
func Lookup(id Identity) (Spec, bool) {
	switch id.Bank {
	case Holding:
		s, ok := holdingSpecs[id.Offset]
		return s, ok
	case Input:
		s, ok := inputSpecs[id.Offset]
		return s, ok
	}
	return Spec{}, false
}

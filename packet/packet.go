package packet

// Packet is one node of a decoded transmission. Literal packets use Value;
// operator packets use TypeID and Children. Decoded packets must be treated
// as read only.
type Packet struct {
	Kind     Kind
	Version  uint8
	TypeID   TypeID
	Value    uint64
	Children []*Packet
}

func Literal(version uint8, value uint64) *Packet {
	return &Packet{Kind: LiteralKind, Version: version, Value: value}
}

func Operator(version uint8, typeID TypeID, children ...*Packet) *Packet {
	return &Packet{Kind: OperatorKind, Version: version, TypeID: typeID, Children: children}
}

func (p *Packet) IsLiteral() bool {
	return p.Kind == LiteralKind
}

// Walk calls f on p and its descendants in pre-order. Returning false from
// f skips the children of the packet it was called with.
func (p *Packet) Walk(f func(p *Packet, depth int) bool) {
	p.walk(f, 0)
}

func (p *Packet) walk(f func(*Packet, int) bool, depth int) {
	if !f(p, depth) {
		return
	}
	for _, c := range p.Children {
		c.walk(f, depth+1)
	}
}

// Count is the number of packets in the tree rooted at p.
func (p *Packet) Count() int {
	n := 0
	p.Walk(func(*Packet, int) bool {
		n++
		return true
	})
	return n
}

// Depth is the number of levels in the tree rooted at p; a lone literal
// has depth 1.
func (p *Packet) Depth() int {
	res := 0
	p.Walk(func(_ *Packet, d int) bool {
		res = max(res, d+1)
		return true
	})
	return res
}

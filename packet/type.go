package packet

import "fmt"

type Kind int

const (
	LiteralKind Kind = iota
	OperatorKind
)

func (k Kind) String() string {
	switch k {
	case LiteralKind:
		return "literal"
	case OperatorKind:
		return "operator"
	default:
		return "<unknown kind>"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	switch string(d) {
	case "literal":
		*k = LiteralKind
	case "operator":
		*k = OperatorKind
	default:
		return fmt.Errorf("unrecognized kind %q", d)
	}
	return nil
}

// TypeID is the 3-bit operator code of a packet.
type TypeID uint8

const (
	Sum TypeID = iota
	Product
	Minimum
	Maximum
	LiteralID
	GreaterThan
	LessThan
	EqualTo
)

var typeIDNames = map[TypeID]string{
	Sum:         "sum",
	Product:     "product",
	Minimum:     "min",
	Maximum:     "max",
	LiteralID:   "literal",
	GreaterThan: "gt",
	LessThan:    "lt",
	EqualTo:     "eq",
}

func (t TypeID) String() string {
	s, ok := typeIDNames[t]
	if ok {
		return s
	}
	return fmt.Sprintf("<type %d>", uint8(t))
}

func (t TypeID) MarshalText() ([]byte, error) {
	if _, ok := typeIDNames[t]; !ok {
		return nil, fmt.Errorf("type id %d out of range", uint8(t))
	}
	return []byte(t.String()), nil
}

func (t *TypeID) UnmarshalText(d []byte) error {
	for k, v := range typeIDNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("unrecognized type id %q", d)
}

func TypeIDs() []TypeID {
	return []TypeID{
		Sum,
		Product,
		Minimum,
		Maximum,
		LiteralID,
		GreaterThan,
		LessThan,
		EqualTo,
	}
}

func (t TypeID) IsComparison() bool {
	switch t {
	case GreaterThan, LessThan, EqualTo:
		return true
	default:
		return false
	}
}

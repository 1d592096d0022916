package ir

type Type int

const (
	NullType Type = iota
	ScalarType
	MapType
	ListType
)

func Types() []Type {
	return []Type{NullType, ScalarType, MapType, ListType}
}

func (t Type) String() string {
	switch t {
	case NullType:
		return "null"
	case ScalarType:
		return "scalar"
	case MapType:
		return "map"
	case ListType:
		return "list"
	default:
		return "<invalid>"
	}
}

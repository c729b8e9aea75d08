package ast

// NodeType represents the type of the AST node
type NodeType uint8

// Node types
const (
	NodeTypeString NodeType = iota + 1
	NodeTypeSymbol
	NodeTypeList
)

func (nt NodeType) String() string {
	s, ok := nodeTypeName[nt]
	if ok {
		return s
	}
	return ""
}

var nodeTypeName = map[NodeType]string{
	NodeTypeString: "string",
	NodeTypeSymbol: "symbol",
	NodeTypeList:   "list",
}

package engine

// StatementKind is the closed set of line forms the grammar accepts.
// The syntax validator decides the kind once; downstream stages switch
// on it instead of re-inspecting token texts.
type StatementKind int

const (
	Begin StatementKind = iota
	End
	IntegerDecl
	Input
	Write
	Assign
)

func (k StatementKind) String() string {
	switch k {
	case Begin:
		return "BEGIN"
	case End:
		return "END"
	case IntegerDecl:
		return "INTEGER"
	case Input:
		return "INPUT"
	case Write:
		return "WRITE"
	case Assign:
		return "assignment"
	}
	return "unknown"
}

// Statement is the syntax validator's verdict on one line.
// Target and ExprAt are meaningful for Assign only: Target is the
// identifier being assigned, ExprAt the index of the first expression
// token (3 for LET assignments, 2 for bare ones).
type Statement struct {
	Kind   StatementKind
	Target string
	ExprAt int
}

package command

// Kind identifies what a parsed input line asks for.
type Kind string

const (
	KindExit        Kind = "EXIT"
	KindListAll     Kind = "LIST_ALL"
	KindMark        Kind = "MARK"
	KindUnmark      Kind = "UNMARK"
	KindAddTodo     Kind = "ADD_TODO"
	KindAddDeadline Kind = "ADD_DEADLINE"
	KindAddEvent    Kind = "ADD_EVENT"
	KindDelete      Kind = "DELETE"
	KindFind        Kind = "FIND"
)

// Command is a validated input line. The number and meaning of Args is fixed per Kind:
//
//	KindExit        none
//	KindListAll     none, or [filter]
//	KindMark        [position]
//	KindUnmark      [position]
//	KindAddTodo     [description]
//	KindAddDeadline [description, due]
//	KindAddEvent    [description, start, end]
//	KindDelete      [position]
//	KindFind        [keyword]
type Command struct {
	Kind Kind
	Args []string
}

// Arg returns the i-th argument or "" if there is none.
func (c Command) Arg(i int) string {
	if i < 0 || i >= len(c.Args) {
		return ""
	}
	return c.Args[i]
}

package checks

type ensureNotEmpty struct{}

func (ensureNotEmpty) ID() ID             { return NotEmpty }
func (ensureNotEmpty) NeedsContent() bool { return true }
func (ensureNotEmpty) FailFast() bool     { return true }
func (ensureNotEmpty) Priority() int      { return 2 }

func (ensureNotEmpty) Run(in Input) Result {
	if trimSpace(in.Content) == "" {
		return Result{ID: NotEmpty, Status: Error, Detail: "file has no content besides white space"}
	}
	return Result{ID: NotEmpty, Status: Success, Detail: "file has content"}
}

func init() { Register(ensureNotEmpty{}) }

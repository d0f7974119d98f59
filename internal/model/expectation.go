package model

// Expectation is the parsed form of the expectation comments embedded in a test script.
//
// ExpectedLines is ordered: element i is compared against output line i.
type Expectation struct {
	ExpectedLines []string
	// RuntimeError is the substring that must appear in the output when the
	// interpreter exits with a non-zero status. Only meaningful when HasRuntimeError is set.
	RuntimeError    string
	HasRuntimeError bool
}

// IsEmpty reports whether the script carries no expectation markers at all.
func (e Expectation) IsEmpty() bool {
	return len(e.ExpectedLines) == 0 && !e.HasRuntimeError
}

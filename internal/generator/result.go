package generator

// Result is the outcome of an optimized-prompt call: either the generated
// text or a failure message. Every failure is reported the same way.
type Result struct {
	text    string
	failure string
	failed  bool
}

func Success(text string) Result {
	return Result{text: text}
}

func Failure(msg string) Result {
	return Result{failure: msg, failed: true}
}

func (r Result) Failed() bool {
	return r.failed
}

// Text returns the generated text; it is empty for a failure.
func (r Result) Text() string {
	return r.text
}

// String renders the result for display: the text, or "Error: <details>".
func (r Result) String() string {
	if r.failed {
		return "Error: " + r.failure
	}
	return r.text
}

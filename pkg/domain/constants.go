package domain

const (
	// Epsilon marks "consume nothing" in the input position and
	// "touch nothing" in the pop and push positions.
	Epsilon rune = '.'

	// BottomMarker is the stack symbol pushed at creation and on every reset.
	BottomMarker rune = '$'

	// StatusTrapped is the status reported once no transition applied.
	StatusTrapped = "trapped"
)

// Verdict is the accept/reject outcome of a run.
type Verdict string

const (
	VerdictAccepted Verdict = "String accepted."
	VerdictRejected Verdict = "String rejected."
)

// IsEpsilon reports whether r is the epsilon marker.
func IsEpsilon(r rune) bool {
	return r == Epsilon
}

// IsEpsilonPush reports whether a push string pushes nothing.
// Both the empty string and a lone epsilon marker qualify.
func IsEpsilonPush(push string) bool {
	return push == "" || push == string(Epsilon)
}

package examples

// defaultPhrases is shared by every picker and never modified.
var defaultPhrases = [...]string{
	"A man, a plan, a canal: Panama",
	"Taco cat",
	"Was it a car or a cat I saw?",
	"No 'x' in Nixon",
	"Madam, in Eden, I'm Adam",
	"Never odd or even",
	"Step on no pets",
	"Do geese see God?",
	"Mr. Owl ate my metal worm",
	"Eva, can I see bees in a cave?",
	"Racecar",
	"Yo, banana boy!",
	"Murder for a jar of red rum",
	"Rats live on no evil star",
}

// DefaultPhrases returns a copy of the built-in phrase list.
func DefaultPhrases() []string {
	out := make([]string, len(defaultPhrases))
	copy(out, defaultPhrases[:])
	return out
}

package mastermind

var winTitles = []string{
	"LUCKER DUCKER",
	"lucker ducker",
	"goated mastermind",
	"mastermind",
	"genius",
	"clever loon",
	"silly goose",
	"dangerous warbler",
}

// WinTitle names the winner by how many guesses they needed.
// Counts beyond the table reuse the last title.
func WinTitle(guesses int) string {
	if guesses < 1 {
		guesses = 1
	}
	if guesses > len(winTitles) {
		guesses = len(winTitles)
	}
	return winTitles[guesses-1]
}

package action

import cb "github.com/atotto/clipboard"

// Copy puts text on the system clipboard.
func Copy(text string) error {
	return cb.WriteAll(text)
}

package git

// Commit creates a commit with the title and body as two -m segments, which
// git joins into a title/body message pair. Stdio is inherited so commit
// hooks can interact with the terminal.
func Commit(r Runner, title, body string) error {
	return r.RunInteractive("commit", "-m", title, "-m", body)
}

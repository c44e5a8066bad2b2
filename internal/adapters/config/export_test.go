package config

// SetHomeForTest replaces the home directory lookup used to expand ~.
func (l *Loader) SetHomeForTest(home string) {
	l.home = func() (string, error) { return home, nil }
}

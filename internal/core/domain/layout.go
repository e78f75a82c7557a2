package domain

import "time"

const (
	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "frob.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// DefaultDebounceWindow is the time window used to coalesce batch file change events.
	DefaultDebounceWindow = 50 * time.Millisecond
)

package service

import (
	"fmt"
	"path/filepath"
	"time"
)

// BuildTitle composes the note title from the basename of the working
// directory and the local date, e.g. "[my-project] - 31.12.2026". Both
// inputs are passed explicitly so the function stays free of ambient state.
func BuildTitle(workDir string, now time.Time) string {
	return fmt.Sprintf("[%s] - %s", filepath.Base(workDir), now.Format("02.01.2006"))
}

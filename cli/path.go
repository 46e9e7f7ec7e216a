package cli

import (
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/ardnew/jalg/pkg"
)

// includePath returns the source search path: dirs followed by the entries
// of $JALG_PATH, restricted to existing directories.
func includePath(dirs []string) []string {
	list := mung.Make(
		mung.WithSubjectItems(os.Getenv(pkg.PathEnv)),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
		mung.WithFilter(isDir),
	).String()

	return filepath.SplitList(list)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

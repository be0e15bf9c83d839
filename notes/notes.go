package notes

import (
	// Stdlib
	"fmt"
	"os"
	"path/filepath"
	"strings"

	// Internal
	"github.com/yididiel7/fresh/errs"
)

// Filename is the release notes file used as the annotated tag content.
const Filename = "RELEASE_NOTES.md"

// Load returns the trimmed release notes content from the given directory.
// The second return value is false when the file does not exist or contains
// nothing but whitespace; that is not an error, the release tag is simply
// created without any notes attached.
func Load(dir string) (content string, ok bool, err error) {
	path := filepath.Join(dir, Filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		task := fmt.Sprintf("Read release notes file '%v'", path)
		return "", false, errs.NewError(task, err)
	}

	content = strings.TrimSpace(string(data))
	return content, content != "", nil
}

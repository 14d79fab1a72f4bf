package stamper

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/byte4ever/strfmt/placeholder"
)

// LoadStamps reads status files and merges them into a
// single value map. Each line is "KEY VALUE" split on the
// first space; lines without a space are skipped. Later
// files override earlier ones.
func LoadStamps(infoFiles []string) (map[string]any, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]any)

	for _, sf := range infoFiles {
		if err := loadFile(sf, stamps); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	return stamps, nil
}

func loadFile(path string, stamps map[string]any) error {
	fi, err := os.Open(path) //nolint:gosec // paths from CLI flags
	if err != nil {
		return err
	}

	defer fi.Close() //nolint:errcheck // read-only file

	sc := bufio.NewScanner(fi)
	sc.Buffer(nil, 1<<20)

	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), " ")
		if ok {
			stamps[key] = val
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	return nil
}

// Stamp loads status variables from infoFiles and expands
// the {KEY} placeholders of format. Unknown placeholders are
// kept unless strict is set, in which case the first one is
// reported as a *placeholder.MissingKeyError.
func Stamp(
	infoFiles []string,
	format string,
	strict bool,
) (string, error) {
	const errCtx = "stamping"

	stamps, err := LoadStamps(infoFiles)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	out, err := placeholder.Expand(
		format,
		placeholder.DefaultPrefix,
		placeholder.DefaultSuffix,
		stamps,
		strict,
	)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

package verify

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedManifest is returned by ParseManifest for lines it cannot
// parse.
var ErrMalformedManifest = errors.New("malformed manifest")

// Entry is the checksum of one blob. Size counts the bytes that were
// checksummed (the decoded size for compressed blobs); it is zero for
// entries read from a manifest.
type Entry struct {
	Name string
	CRC  uint32
	Size int64
}

func (e Entry) String() string {
	return fmt.Sprintf("%08x  %s", e.CRC, e.Name)
}

// ParseManifest reads entries from r. Blank lines and lines starting with
// '#' are skipped. The checksum is followed by two spaces, by a space and
// the binary mode marker '*', or by a single space or tab; everything after
// that separator is the name.
func ParseManifest(r io.Reader) ([]Entry, error) {
	var entries []Entry

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		e, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %s", ErrMalformedManifest, lineNo, err)
		}
		entries = append(entries, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return entries, nil
}

func parseLine(line string) (Entry, error) {
	if len(line) < 8 {
		return Entry{}, errors.New("line too short")
	}
	crc, err := strconv.ParseUint(line[:8], 16, 32)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid checksum %q", line[:8])
	}

	// The name starts right after the separator; leading spaces belong to it.
	name := line[8:]
	switch {
	case strings.HasPrefix(name, "  "), strings.HasPrefix(name, " *"):
		name = name[2:]
	case strings.HasPrefix(name, " "), strings.HasPrefix(name, "\t"):
		name = name[1:]
	default:
		return Entry{}, errors.New("missing separator after checksum")
	}
	if strings.TrimSpace(name) == "" {
		return Entry{}, errors.New("missing name")
	}
	return Entry{Name: name, CRC: uint32(crc)}, nil
}

// WriteManifest writes entries in the format read by ParseManifest.
func WriteManifest(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if strings.ContainsAny(e.Name, "\n\r") {
			return fmt.Errorf("blob name %q contains a line break", e.Name)
		}
		if strings.TrimSpace(e.Name) == "" {
			return fmt.Errorf("blob name %q is blank", e.Name)
		}
		if _, err := fmt.Fprintln(bw, e.String()); err != nil {
			return err
		}
	}
	return bw.Flush()
}

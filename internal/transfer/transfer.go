// Package transfer stages a resolved ticket for conversion: it lays out the
// converted/ directory tree and echoes the ticket's markdown to a writer.
package transfer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	DefaultResolvedDir  = "./resolved-tickets"
	DefaultConvertedDir = "./converted"

	dirPerms = 0o777
)

// Config names the directories a run reads from and writes to.
type Config struct {
	ResolvedDir  string
	ConvertedDir string

	// Log receives progress notes. Nil disables them.
	Log io.Writer
}

// DefaultConfig returns the working-directory-relative layout.
func DefaultConfig() Config {
	return Config{
		ResolvedDir:  DefaultResolvedDir,
		ConvertedDir: DefaultConvertedDir,
	}
}

// OutputDirs returns the directories created for a run, parents first.
func OutputDirs(convertedDir string) []string {
	return []string{
		convertedDir,
		convertedDir + "/text",
		convertedDir + "/json",
		convertedDir + "/tmp",
	}
}

// SourcePath returns the markdown file for ticketID. The identifier is used
// as-is.
func SourcePath(resolvedDir, ticketID string) string {
	return filepath.Join(resolvedDir, ticketID+".md")
}

// Run creates the output directories, then copies the ticket's lines to out
// as they are read. Directories created before a failure are not removed.
func Run(cfg Config, ticketID string, out io.Writer) error {
	src := SourcePath(cfg.ResolvedDir, ticketID)

	for _, dir := range OutputDirs(cfg.ConvertedDir) {
		if err := os.Mkdir(dir, dirPerms); err != nil {
			if errors.Is(err, fs.ErrExist) {
				return fmt.Errorf("%w: %w", ErrDirectoryExists, err)
			}
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		cfg.logf("created %s\n", dir)
	}

	return echo(cfg, src, out)
}

func echo(cfg Config, src string, out io.Writer) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTicketNotFound, err)
	}
	defer f.Close()

	cfg.logf("reading %s\n", src)

	// Nothing is ever appended here; the conversion step that would consume
	// collected lines does not exist yet.
	var lines []string

	r := bufio.NewReader(NewDecoder(f))
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(out, line); werr != nil {
				return fmt.Errorf("writing output: %w", werr)
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w %s: %w", ErrDecoding, src, err)
		}
	}

	if _, err := fmt.Fprintln(out, lines); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func (c Config) logf(format string, args ...any) {
	if c.Log != nil {
		fmt.Fprintf(c.Log, format, args...)
	}
}

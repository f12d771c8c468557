package cli

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/suite"

	"github.com/idelchi/filesum/internal/log"
)

// CommandTestSuite runs the command end to end against temp directories
type CommandTestSuite struct {
	suite.Suite
	tempDir string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
}

// SetupTest isolates the environment of each test
func (s *CommandTestSuite) SetupTest() {
	s.tempDir = s.T().TempDir()
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}

	home := s.T().TempDir()
	s.T().Setenv("HOME", home)
	s.T().Setenv("USERPROFILE", home)
	s.T().Setenv("FILESUM_DIR", "")
	s.T().Setenv("FILESUM_TOP", "")
	s.T().Setenv("FILESUM_DEBUG", "")
}

func (s *CommandTestSuite) run(args ...string) error {
	cmd := New("1.2.3").command(s.stdout, s.stderr)
	cmd.SetArgs(args)

	return cmd.Execute()
}

func (s *CommandTestSuite) writeFile(name string, size int, mod time.Time) {
	path := filepath.Join(s.tempDir, name)
	s.Require().NoError(os.MkdirAll(filepath.Dir(path), 0o755))
	s.Require().NoError(os.WriteFile(path, make([]byte, size), 0o644))
	s.Require().NoError(os.Chtimes(path, mod, mod))
}

func (s *CommandTestSuite) TestReportsDirectory() {
	base := time.Date(2021, 5, 5, 0, 0, 0, 0, time.UTC)
	s.writeFile("a.txt", 100*1024, base)
	s.writeFile("b.txt", 50, base.Add(-time.Hour))
	s.writeFile(filepath.Join("sub", "c"), 200*1024, base.Add(time.Hour))

	s.Require().NoError(s.run(s.tempDir))

	out := s.stdout.String()
	s.Contains(out, "Scanning directory: "+s.tempDir)
	s.Contains(out, "▸ txt:")
	s.Contains(out, "▸ none:")
	s.Contains(out, "– 200 KB")
	s.Contains(out, "– 100 KB")

	largest := out[strings.Index(out, "largest files:"):strings.Index(out, "oldest files:")]
	s.Less(strings.Index(largest, "▸ c "), strings.Index(largest, "▸ a.txt"))
	s.Less(strings.Index(largest, "▸ a.txt"), strings.Index(largest, "▸ b.txt"))

	oldest := out[strings.Index(out, "oldest files:"):strings.Index(out, "Stats:")]
	s.Less(strings.Index(oldest, "▸ b.txt"), strings.Index(oldest, "▸ a.txt"))
	s.Less(strings.Index(oldest, "▸ a.txt"), strings.Index(oldest, "▸ c "))
}

func (s *CommandTestSuite) TestTopFlagLimitsSections() {
	for i, name := range []string{"one.go", "two.go", "three.go"} {
		s.writeFile(name, (i+1)*2048, time.Now().Add(time.Duration(-i)*time.Hour))
	}

	s.Require().NoError(s.run("--top", "1", s.tempDir))

	out := s.stdout.String()
	s.Contains(out, "Top 1 largest files:")
	s.Contains(out, "Top 1 oldest files:")
	// One line per extension plus one per top section.
	s.Equal(3, strings.Count(out, "▸"))
}

func (s *CommandTestSuite) TestEnvironmentDirectory() {
	s.writeFile("only.md", 10, time.Now())
	s.T().Setenv("FILESUM_DIR", s.tempDir)

	s.Require().NoError(s.run())
	s.Contains(s.stdout.String(), "▸ md:")
}

func (s *CommandTestSuite) TestEmptyDirectory() {
	s.Require().NoError(os.MkdirAll(filepath.Join(s.tempDir, "a", "b"), 0o755))

	s.Require().NoError(s.run(s.tempDir))
	s.Equal(3, strings.Count(s.stdout.String(), "(none)"))
}

func (s *CommandTestSuite) TestMissingDirectory() {
	err := s.run(filepath.Join(s.tempDir, "missing"))

	s.Error(err)
	s.True(errors.Is(err, fs.ErrNotExist))
	s.Empty(s.stdout.String())
}

func (s *CommandTestSuite) TestInvalidTop() {
	err := s.run("--top", "0", s.tempDir)

	s.Error(err)
	s.Empty(s.stdout.String())
}

func (s *CommandTestSuite) TestTooManyArguments() {
	s.Error(s.run(s.tempDir, s.tempDir))
}

func (s *CommandTestSuite) TestDebugLevelDoesNotLeak() {
	s.writeFile("a.txt", 1, time.Now())

	s.Require().NoError(s.run("--debug", s.tempDir))
	s.Equal(zerolog.DebugLevel, log.Logger.GetLevel())

	s.Require().NoError(s.run(s.tempDir))
	s.Equal(zerolog.InfoLevel, log.Logger.GetLevel())
}

func (s *CommandTestSuite) TestVersion() {
	s.Require().NoError(s.run("--version"))
	s.Contains(s.stdout.String(), "1.2.3")
}

func TestCommandSuite(t *testing.T) {
	suite.Run(t, new(CommandTestSuite))
}

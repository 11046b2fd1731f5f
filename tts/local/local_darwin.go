package local

import (
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/asticode/go-astilog"
	"github.com/pkg/errors"
)

type windowsVoice struct{}

// Init initializes the speaker
func (s *Speaker) Init() error { return nil }

// Close implements the io.Closer interface
func (s *Speaker) Close() error { return nil }

func (s *Speaker) say(i string) (err error) {
	// Init args
	var args []string
	if len(s.o.Voice) > 0 {
		args = append(args, "-v", s.o.Voice)
	}
	args = append(args, i)

	// Binary path
	var name = "say"
	if len(s.o.BinaryDirPath) > 0 {
		name = filepath.Join(s.o.BinaryDirPath, name)
	}

	// Init cmd
	var cmd = exec.Command(name, args...)

	// Exec
	astilog.Debugf("local: executing %s", strings.Join(cmd.Args, " "))
	var b []byte
	if b, err = cmd.CombinedOutput(); err != nil {
		err = errors.Wrapf(err, "local: running %s failed with combined output %s", strings.Join(cmd.Args, " "), b)
		return
	}
	return
}

package e2e

import (
	"bufio"
	"os"
	"os/exec"
	"strings"
)

type cli struct {
	workingDir string
	cliPath    string
}

func (c *cli) runCliCmdOutput(args ...string) ([]byte, error) {
	cmd := exec.Command(c.cliPath, args...)
	cmd.Dir = c.workingDir
	cmd.Stderr = os.Stderr
	return cmd.Output()
}

// watchSession is a running `compose chart --watch`
type watchSession struct {
	cmd     *exec.Cmd
	renders chan string
}

// startWatch starts the CLI in watch mode and collects the names of the charts it reports as rendered
func (c *cli) startWatch(args ...string) (*watchSession, error) {
	cmd := exec.Command(c.cliPath, append([]string{"chart", "--watch"}, args...)...)
	cmd.Dir = c.workingDir

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	w := &watchSession{
		cmd:     cmd,
		renders: make(chan string, 16),
	}

	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			line := scanner.Text()
			start := strings.Index(line, "rendered '")
			if start < 0 {
				continue
			}
			name := line[start+len("rendered '"):]
			if end := strings.IndexByte(name, '\''); end >= 0 {
				name = name[:end]
			}
			w.renders <- name
		}
		close(w.renders)
	}()

	return w, nil
}

func (w *watchSession) stop() error {
	if err := w.cmd.Process.Signal(os.Interrupt); err != nil {
		return err
	}
	// stderr must be drained before Wait
	for range w.renders {
	}
	return w.cmd.Wait()
}

package maven

import (
	"io"
	"os/exec"
	"path/filepath"
	"runtime"

	gofrogcmd "github.com/jfrog/gofrog/io"
)

// GradleWrapperCommand runs the container Gradle wrapper from the container root.
type GradleWrapperCommand struct {
	workingDir string
	task       string
}

func NewGradleWrapperCommand(workingDir, task string) *GradleWrapperCommand {
	return &GradleWrapperCommand{workingDir: workingDir, task: task}
}

func (gwc *GradleWrapperCommand) Executable() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(gwc.workingDir, gradleWrapperWindows)
	}
	return gradleWrapperUnix
}

func (gwc *GradleWrapperCommand) GetCmd() *exec.Cmd {
	cmd := exec.Command(gwc.Executable(), gwc.task)
	cmd.Dir = gwc.workingDir
	return cmd
}

func (gwc *GradleWrapperCommand) GetEnv() map[string]string {
	return map[string]string{}
}

func (gwc *GradleWrapperCommand) GetStdWriter() io.WriteCloser {
	return nil
}

func (gwc *GradleWrapperCommand) GetErrWriter() io.WriteCloser {
	return nil
}

var _ gofrogcmd.CmdConfig = (*GradleWrapperCommand)(nil)

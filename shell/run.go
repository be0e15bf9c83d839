package shell

import (
	"bytes"
	"os/exec"
)

func Run(command string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)

	cmd := exec.Command(command, args...)

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()

	return
}

// Installed makes sure the given executable can be found in PATH.
func Installed(command string) error {
	_, err := exec.LookPath(command)
	return err
}

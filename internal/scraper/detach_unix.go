//go:build unix

package scraper

import (
	"os/exec"
	"syscall"
)

// detach puts the child in its own process group so signals aimed at the server skip it.
func detach(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

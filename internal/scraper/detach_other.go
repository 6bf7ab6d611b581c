//go:build !unix

package scraper

import "os/exec"

func detach(*exec.Cmd) {}

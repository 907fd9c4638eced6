package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

func renderResult(label string, ok bool, message string, colorize bool) string {
	status, color := "OK", ansiGreen
	if !ok {
		status, color = "FAIL", ansiRed
	}

	line := fmt.Sprintf("%-20s [%s]", label+":", status)
	if message != "" {
		line += " " + message
	}

	if colorize {
		return color + line + ansiReset
	}

	return line
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

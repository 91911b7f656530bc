package main

import (
	"fmt"
	"io"
)

const (
	colorGreen  = "\033[0;32m"
	colorRed    = "\033[0;31m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
	colorReset  = "\033[0m"
)

// ui writes command output. Colors are off when writing to a non-terminal.
type ui struct {
	out   io.Writer
	color bool
}

func (u *ui) printf(color, prefix, format string, a ...interface{}) {
	msg := prefix + fmt.Sprintf(format, a...)
	if u.color && color != "" {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(u.out, msg)
}

func (u *ui) Info(format string, a ...interface{}) {
	u.printf(colorBlue, "ℹ ", format, a...)
}

func (u *ui) Success(format string, a ...interface{}) {
	u.printf(colorGreen, "✓ ", format, a...)
}

func (u *ui) Warning(format string, a ...interface{}) {
	u.printf(colorYellow, "⚠ ", format, a...)
}

func (u *ui) Error(format string, a ...interface{}) {
	u.printf(colorRed, "✗ ", format, a...)
}

func (u *ui) Header(title string) {
	u.printf(colorYellow, "\n=== ", "%s ===", title)
}

func (u *ui) Line(format string, a ...interface{}) {
	u.printf("", "", format, a...)
}

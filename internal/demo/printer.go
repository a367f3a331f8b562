package demo

import (
	"fmt"
	"io"
	"log"
)

// Printer writes wall-clock stamped lines of the form "15:04:05 | message".
type Printer struct {
	l *log.Logger
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{l: log.New(w, "| ", log.Ltime|log.Lmsgprefix)}
}

func (p *Printer) Print(msg string) {
	p.l.Println(msg)
}

func (p *Printer) Printf(format string, args ...any) {
	p.l.Println(fmt.Sprintf(format, args...))
}

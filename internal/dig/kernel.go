// Package dig implements logic for dependency injection using uber-go/dig.

package dig

import (
	"biometric-query/internal/verdict"
	"fmt"

	"go.uber.org/dig"
)

type Kernel struct {
	Container *dig.Container
	printer   *verdict.Printer
}

func (t *Kernel) Build() (err error) {
	t.Container, err = buildContainer(t.printer)
	if err != nil {
		err = fmt.Errorf("failed to build container: %w", err)
	}
	return
}

func NewKernel(printer *verdict.Printer) *Kernel {
	return &Kernel{
		printer: printer,
	}
}

package dispatch

import (
	"fmt"
	"io"
	"os"

	"github.com/realtydesk/estate-notify/internal/entity"
)

type Console struct {
	out io.Writer
}

// NewConsole returns a [entity.MessageDispatcher] that prints one line per
// message. A nil writer means stdout.
func NewConsole(out io.Writer) entity.MessageDispatcher {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

func (c *Console) Send(messages []string) error {
	for _, message := range messages {
		if _, err := fmt.Fprintln(c.out, message); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/eventregistry/events"
	regerrors "github.com/KirkDiggler/eventregistry/internal/errors"
)

// Door is a host that embeds its own event registry. Commands read from the
// demo input are applied to it.
type Door struct {
	events.Registry
	out       io.Writer
	listeners map[string]*printer
}

// printer writes every event it receives as "<name> <type> <args...>".
// The event type arrives through the scope set when it was attached.
type printer struct {
	name string
	out  io.Writer
}

func (p *printer) HandleEvent(scope any, data ...any) {
	parts := []string{p.name, fmt.Sprint(scope)}
	for _, d := range data {
		parts = append(parts, fmt.Sprint(d))
	}
	fmt.Fprintln(p.out, strings.Join(parts, " "))
}

// NewDoor creates a Door declaring eventTypes
func NewDoor(eventTypes []events.EventType, out io.Writer, opts ...events.Option) (*Door, error) {
	d := &Door{
		out:       out,
		listeners: make(map[string]*printer),
	}
	if err := d.Init(eventTypes, opts...); err != nil {
		return nil, regerrors.Wrap(err, "failed to declare door events")
	}
	return d, nil
}

// listener returns the printer registered under name, creating it on first use
// so the same name keeps one identity across event types.
func (d *Door) listener(name string) *printer {
	p, ok := d.listeners[name]
	if !ok {
		p = &printer{name: name, out: d.out}
		d.listeners[name] = p
	}
	return p
}

// Exec applies one command line to the door
func (d *Door) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return nil
	}

	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "on", "once":
		if len(args) != 2 {
			return regerrors.InvalidArgumentf("usage: %s <type> <name>", cmd)
		}
		eventType := events.EventType(args[0])
		opts := []events.ListenerOption{events.WithScope(args[0])}
		if cmd == "once" {
			opts = append(opts, events.WithOnce())
		}
		return d.AddListener(eventType, d.listener(args[1]), opts...)

	case "off":
		if len(args) != 2 {
			return regerrors.InvalidArgument("usage: off <type> <name>")
		}
		p, ok := d.listeners[args[1]]
		if !ok {
			return d.RemoveListener(events.EventType(args[0]), nil)
		}
		return d.RemoveListener(events.EventType(args[0]), p)

	case "emit":
		if len(args) < 1 {
			return regerrors.InvalidArgument("usage: emit <type> [args...]")
		}
		data := make([]any, 0, len(args)-1)
		for _, a := range args[1:] {
			data = append(data, a)
		}
		return d.Emit(events.EventType(args[0]), data...)

	case "count":
		if len(args) != 1 {
			return regerrors.InvalidArgument("usage: count <type>")
		}
		n, err := d.ListenerCount(events.EventType(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintln(d.out, n)
		return nil

	case "list":
		if len(args) != 1 {
			return regerrors.InvalidArgument("usage: list <type>")
		}
		entries, err := d.Listeners(events.EventType(args[0]))
		if err != nil {
			return err
		}
		for _, e := range entries {
			name := "?"
			if p, ok := e.Listener.(*printer); ok {
				name = p.name
			}
			fmt.Fprintf(d.out, "%s %s once=%t\n", e.ID, name, e.Once)
		}
		return nil

	case "clear":
		types := make([]events.EventType, 0, len(args))
		for _, a := range args {
			types = append(types, events.EventType(a))
		}
		return d.RemoveAllListeners(types...)

	case "types":
		for _, t := range d.EventTypes() {
			fmt.Fprintln(d.out, t)
		}
		return nil

	default:
		return regerrors.InvalidArgumentf("unknown command %q", cmd)
	}
}

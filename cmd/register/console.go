package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/dukerupert/signup/internal/domain"
	"github.com/dukerupert/signup/internal/form"
	"github.com/dukerupert/signup/internal/service"
)

const helpText = `Commands:
  field=value   set a field (e.g. email=jane@example.com, terms=yes)
  :submit       submit the form
  :show         print the current values
  :states       list states for the selected country
  :cities       list cities for the selected state
  :metrics      print session metrics
  :quit         exit`

// console binds text lines to session events.
type console struct {
	session  *service.Session
	gatherer prometheus.Gatherer
	out      io.Writer
}

func newConsole(session *service.Session, gatherer prometheus.Gatherer, out io.Writer) *console {
	return &console{session: session, gatherer: gatherer, out: out}
}

// handle processes one input line and reports whether the user asked to quit.
func (c *console) handle(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ":") {
		return c.command(ctx, strings.ToLower(line))
	}

	name, value, ok := strings.Cut(line, "=")
	if !ok {
		fmt.Fprintf(c.out, "expected field=value, got %q\n", line)
		return false
	}
	if _, _, err := c.session.OnFieldChanged(name, value); err != nil {
		fmt.Fprintf(c.out, "ERROR: %s\n", domain.ErrorMessage(err))
	}
	return false
}

func (c *console) command(ctx context.Context, cmd string) bool {
	switch cmd {
	case ":quit", ":q", ":exit":
		return true
	case ":help", ":h":
		fmt.Fprintln(c.out, helpText)
	case ":submit":
		c.submit(ctx)
	case ":show":
		c.show()
	case ":states":
		country := c.session.Values().Country
		if country == "" {
			fmt.Fprintln(c.out, "Select a country first")
			break
		}
		fmt.Fprintf(c.out, "%s: %s\n", country, strings.Join(c.session.Resolver().ResolveStates(country), ", "))
	case ":cities":
		cities := c.session.Resolver().ResolveCities(c.session.Values().State)
		switch cities.Status {
		case form.CitiesUnlisted:
			fmt.Fprintln(c.out, "No city list for this state; enter any city")
		default:
			fmt.Fprintln(c.out, strings.Join(cities.Options, ", "))
		}
	case ":metrics":
		c.metrics()
	default:
		fmt.Fprintf(c.out, "unknown command %s (try :help)\n", cmd)
	}
	return false
}

func (c *console) submit(ctx context.Context) {
	reg, err := c.session.Submit(ctx)
	if err != nil {
		for _, failure := range c.session.Validator().Failures(c.session.Values()) {
			fmt.Fprintf(c.out, "  - %s: %s\n", failure.Field.Label(), failure.Result.Message)
		}
		if !domain.IsValidationError(err) {
			fmt.Fprintf(c.out, "ERROR: %s\n", domain.ErrorMessage(err))
		}
		return
	}
	fmt.Fprintf(c.out, "Registration %s recorded\n", reg.ID)
}

func (c *console) show() {
	values := c.session.Values()
	for _, f := range form.Fields {
		value := values.Get(f)
		if (f == form.FieldPassword || f == form.FieldConfirmPassword) && value != "" {
			value = strings.Repeat("*", len(value))
		}
		fmt.Fprintf(c.out, "  %-22s %s\n", f.Label()+":", value)
	}
	fmt.Fprintf(c.out, "  %-22s %s\n", "Status:", c.session.Status())
}

func (c *console) metrics() {
	families, err := c.gatherer.Gather()
	if err != nil {
		fmt.Fprintf(c.out, "ERROR: %v\n", err)
		return
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(c.out, mf); err != nil {
			fmt.Fprintf(c.out, "ERROR: %v\n", err)
			return
		}
	}
}

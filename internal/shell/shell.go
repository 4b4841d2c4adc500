// Package shell is the interactive recruitment console. It reads menu choices
// and field values line by line and drives the entity services.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/Abraxas-365/hirely/pkg/errx"
	"github.com/Abraxas-365/hirely/recruitment/application/applicationsrv"
	"github.com/Abraxas-365/hirely/recruitment/candidate/candidatesrv"
	"github.com/Abraxas-365/hirely/recruitment/interview/interviewsrv"
	"github.com/Abraxas-365/hirely/recruitment/job/jobsrv"
	"github.com/Abraxas-365/hirely/recruitment/offer/offersrv"
	"github.com/shopspring/decimal"
)

// DateLayout is how interview dates are typed, always in UTC
const DateLayout = "2006-01-02 15:04"

// Services are the operations the console exposes
type Services struct {
	Applications *applicationsrv.ApplicationService
	Candidates   *candidatesrv.CandidateService
	Jobs         *jobsrv.JobService
	Interviews   *interviewsrv.InterviewService
	Offers       *offersrv.OfferService
}

// Console runs the menu loop over an input and an output stream
type Console struct {
	svc Services
	in  *bufio.Scanner
	out io.Writer

	// lines is fed by a single reader goroutine so a pending read can be
	// abandoned when the context of Run is done.
	lines  chan line
	reader sync.Once
	done   <-chan struct{}
	cause  func() error
}

type line struct {
	text string
	err  error
}

// New creates a console reading from in and writing to out
func New(svc Services, in io.Reader, out io.Writer) *Console {
	return &Console{
		svc: svc,
		in:    bufio.NewScanner(in),
		out:   out,
		lines: make(chan line),
	}
}

type action struct {
	key   string
	label string
	run   func(ctx context.Context) error
}

// errInput reports a value that could not be parsed; the action is abandoned
var errInput = errors.New("invalid input")

// Run shows the main menu until the user exits, the input ends or ctx is
// done. A read blocked on the input returns ctx.Err() as soon as ctx is done.
func (c *Console) Run(ctx context.Context) error {
	c.done, c.cause = ctx.Done(), ctx.Err
	main := []action{
		{"1", "Manage Applications", c.submenu("Application Management", c.applicationActions())},
		{"2", "Manage Candidates", c.submenu("Candidate Management", c.candidateActions())},
		{"3", "Manage Jobs", c.submenu("Job Management", c.jobActions())},
		{"4", "Manage Interviews", c.submenu("Interview Management", c.interviewActions())},
		{"5", "Manage Offers", c.submenu("Offer Management", c.offerActions())},
		{"6", "Reports & Statistics", c.submenu("Reports & Statistics", c.reportActions())},
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.printMenu("Recruitment Management System", main, "Exit")
		choice, err := c.readLine("Choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == "0" {
			c.printf("Goodbye.\n")
			return nil
		}

		if err := c.dispatch(ctx, main, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (c *Console) submenu(title string, actions []action) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		c.printMenu(title, actions, "Back to main menu")
		choice, err := c.readLine("Choice: ")
		if err != nil {
			return err
		}
		if choice == "0" {
			return nil
		}
		return c.dispatch(ctx, actions, choice)
	}
}

// dispatch runs the chosen action. Only end of input and context errors
// escape; everything else is reported and the menu continues.
func (c *Console) dispatch(ctx context.Context, actions []action, choice string) error {
	for _, a := range actions {
		if a.key != choice {
			continue
		}
		err := a.run(ctx)
		switch {
		case err == nil:
		case errors.Is(err, io.EOF), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case errors.Is(err, errInput):
			c.printf("%v\n", err)
		default:
			c.printf("Error: %s\n", describe(err))
		}
		return nil
	}
	c.printf("Invalid choice.\n")
	return nil
}

func describe(err error) string {
	var e *errx.Error
	if errors.As(err, &e) {
		if len(e.Details) == 0 {
			return e.Message
		}
		return fmt.Sprintf("%s %v", e.Message, e.Details)
	}
	return err.Error()
}

// ============================================================================
// Input and output helpers
// ============================================================================

func (c *Console) printMenu(title string, actions []action, zero string) {
	c.printf("\n=== %s ===\n", title)
	for _, a := range actions {
		c.printf("%s. %s\n", a.key, a.label)
	}
	c.printf("0. %s\n", zero)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)
	c.reader.Do(func() { go c.scan() })
	select {
	case l, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	case <-c.done:
		return "", c.cause()
	}
}

// scan forwards input lines until the input ends or Run is cancelled
func (c *Console) scan() {
	defer close(c.lines)
	for c.in.Scan() {
		select {
		case c.lines <- line{text: c.in.Text()}:
		case <-c.done:
			return
		}
	}
	if err := c.in.Err(); err != nil {
		select {
		case c.lines <- line{err: err}:
		case <-c.done:
		}
	}
}

func (c *Console) readID(prompt string) (int64, error) {
	s, err := c.readLine(prompt)
	if err != nil {
		return 0, err
	}
	id, perr := strconv.ParseInt(s, 10, 64)
	if perr != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q is not a positive number", errInput, s)
	}
	return id, nil
}

func (c *Console) readOptional(prompt string) (*string, error) {
	s, err := c.readLine(prompt)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

func (c *Console) readDecimal(prompt string) (decimal.Decimal, error) {
	s, err := c.readLine(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	d, perr := decimal.NewFromString(s)
	if perr != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not an amount", errInput, s)
	}
	return d, nil
}

func (c *Console) readTime(prompt string) (time.Time, error) {
	s, err := c.readLine(prompt)
	if err != nil {
		return time.Time{}, err
	}
	t, perr := time.ParseInLocation(DateLayout, s, time.UTC)
	if perr != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not match %s", errInput, s, DateLayout)
	}
	return t, nil
}

// table writes rows aligned in columns under a header
func (c *Console) table(header string, rows [][]string) {
	if len(rows) == 0 {
		c.printf("No records found.\n")
		return
	}
	tw := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	_ = tw.Flush()
}

func (c *Console) outcome(ok bool, success, missing string) {
	if ok {
		c.printf("%s\n", success)
		return
	}
	c.printf("%s\n", missing)
}

func stamp(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

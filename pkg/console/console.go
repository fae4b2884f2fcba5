package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omx-labs/order-matcher-go/pkg/engine"
	"github.com/omx-labs/order-matcher-go/pkg/journal"
	"github.com/omx-labs/order-matcher-go/pkg/model"
)

const helpText = `available commands:
  buy|sell <quantity>@<price> [#<id>]  - enter an order
  list                                 - list all resting orders
  trades                               - list this session's trades
  order <id>                           - show a submitted order
  quit                                 - quit
  help                                 - show this message`

// Console runs a line-based interactive session against a single matching
// engine. It is the external collaborator the engine is designed for: it
// parses order entries, submits them, renders returned trades, and keeps the
// session journal. Engine rejections are user input errors, not failures.
type Console struct {
	matcher *engine.Matcher
	journal *journal.Journal
	out     io.Writer
	errOut  io.Writer
	prompt  string
	log     *zap.Logger
}

func New(m *engine.Matcher, j *journal.Journal, out, errOut io.Writer, prompt string, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		matcher: m,
		journal: j,
		out:     out,
		errOut:  errOut,
		prompt:  prompt,
		log:     log,
	}
}

// Run reads commands from in until quit or EOF.
func (c *Console) Run(in io.Reader) error {
	fmt.Fprintf(c.out, "welcome to the order matcher (%s). type 'help' for a list of commands.\n", c.matcher.Instrument())

	scanner := bufio.NewScanner(in)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			// ignore
		case line == "help":
			fmt.Fprintln(c.out, helpText)
		case line == "quit":
			fmt.Fprintln(c.out, "good bye!")
			return nil
		case line == "list":
			c.list()
		case line == "trades":
			c.trades()
		case strings.HasPrefix(line, "order "):
			c.show(strings.TrimSpace(strings.TrimPrefix(line, "order ")))
		default:
			c.submit(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	fmt.Fprintln(c.out, "good bye!")
	return nil
}

// submit parses an order entry, submits it, and renders the trades.
func (c *Console) submit(line string) {
	o, err := ParseOrder(line)
	if err != nil {
		fmt.Fprintf(c.errOut, "bad input: %v\n", err)
		return
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	trades, err := c.matcher.Submit(o)
	if err != nil {
		fmt.Fprintf(c.errOut, "bad input: %v\n", err)
		return
	}

	c.journal.RecordOrder(o)
	c.journal.RecordTrades(trades)
	c.log.Info("order submitted",
		zap.String("id", o.ID),
		zap.Int("trades", len(trades)),
		zap.Int64("remaining", o.Quantity),
	)

	for _, t := range trades {
		fmt.Fprintln(c.out, t)
	}
}

// list renders both sides of the book in priority order.
func (c *Console) list() {
	for _, side := range []model.Side{model.BUY, model.SELL} {
		fmt.Fprintf(c.out, "%s:\n", side)
		orders, err := c.matcher.Orders(side)
		if err != nil {
			fmt.Fprintf(c.errOut, "bad input: %v\n", err)
			return
		}
		for _, o := range orders {
			fmt.Fprintln(c.out, o)
		}
	}
}

func (c *Console) trades() {
	for _, t := range c.journal.Trades() {
		fmt.Fprintln(c.out, t)
	}
}

func (c *Console) show(id string) {
	o, err := c.journal.Order(id)
	if err != nil {
		fmt.Fprintf(c.errOut, "bad input: %v\n", err)
		return
	}
	fmt.Fprintln(c.out, o)
}

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/pinbank/pkg/domain/account"
	accountsvc "github.com/amirasaad/pinbank/pkg/service/account"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

var errUsage = errors.New("invalid arguments")

type cli struct {
	svc     *accountsvc.Service
	out     io.Writer
	readPin func(prompt string) (string, error)
}

var (
	heading = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	amount  = color.New(color.FgYellow)
)

func printUsage(w io.Writer) {
	heading.Fprintln(w, "Usage: pinbank <command> [arguments]")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create <owner_name>")
	fmt.Fprintln(w, "  get <account_number>")
	fmt.Fprintln(w, "  list")
	fmt.Fprintln(w, "  deposit <account_number> <amount>")
	fmt.Fprintln(w, "  withdraw <account_number> <amount>")
	fmt.Fprintln(w, "  transfer <from_account_number> <to_account_number> <amount>")
	fmt.Fprintln(w, "  update <account_number> [owner_name]")
	fmt.Fprintln(w, "  close <account_number>")
}

func (c *cli) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printUsage(c.out)
		return nil
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "create":
		return c.create(ctx, rest)
	case "get":
		return c.get(ctx, rest)
	case "list":
		return c.list(ctx)
	case "deposit", "withdraw":
		return c.action(ctx, cmd, rest)
	case "transfer":
		return c.transfer(ctx, rest)
	case "update":
		return c.update(ctx, rest)
	case "close":
		return c.close(ctx, rest)
	case "help", "-h", "--help":
		printUsage(c.out)
		return nil
	default:
		printUsage(c.out)
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func (c *cli) create(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: create <owner_name>", errUsage)
	}
	pin, err := c.readPin("Choose a PIN: ")
	if err != nil {
		return err
	}
	summary, err := c.svc.Create(ctx, args[0], pin)
	if err != nil {
		return err
	}
	success.Fprintf(c.out, "Account created: number=%d owner=%s\n", summary.AccountNumber, summary.OwnerName)
	return nil
}

func (c *cli) get(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: get <account_number>", errUsage)
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	summary, err := c.svc.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	c.printSummary(summary)
	return nil
}

func (c *cli) list(ctx context.Context) error {
	summaries, err := c.svc.ListAll(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Fprintln(c.out, "No accounts")
		return nil
	}
	for _, s := range summaries {
		c.printSummary(s)
	}
	return nil
}

func (c *cli) action(ctx context.Context, action string, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: %s <account_number> <amount>", errUsage, action)
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	amt, err := parseAmount(args[1])
	if err != nil {
		return err
	}
	pin, err := c.readPin("PIN: ")
	if err != nil {
		return err
	}
	summary, err := c.svc.PerformAction(ctx, action, amt, number, pin)
	if err != nil {
		return err
	}
	success.Fprintf(c.out, "%s done. ", strings.ToUpper(action[:1])+action[1:])
	c.printSummary(summary)
	return nil
}

func (c *cli) transfer(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: transfer <from_account_number> <to_account_number> <amount>", errUsage)
	}
	from, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	to, err := parseNumber(args[1])
	if err != nil {
		return err
	}
	amt, err := parseAmount(args[2])
	if err != nil {
		return err
	}
	pin, err := c.readPin("PIN: ")
	if err != nil {
		return err
	}
	sender, recipient, err := c.svc.Transfer(ctx, to, amt, from, pin)
	if err != nil {
		return err
	}
	success.Fprintln(c.out, "Transfer done.")
	c.printSummary(sender)
	c.printSummary(recipient)
	return nil
}

// update renames the account when owner_name is given and changes the PIN
// when a new one is entered at the prompt.
func (c *cli) update(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: update <account_number> [owner_name]", errUsage)
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	pin, err := c.readPin("PIN: ")
	if err != nil {
		return err
	}
	newPin, err := c.readPin("New PIN (empty to keep): ")
	if err != nil {
		return err
	}
	var changes account.Changes
	if len(args) == 2 {
		changes.OwnerName = &args[1]
	}
	if newPin != "" {
		changes.PinCode = &newPin
	}
	if changes.OwnerName == nil && changes.PinCode == nil {
		return fmt.Errorf("%w: nothing to update", errUsage)
	}
	summary, err := c.svc.Update(ctx, number, pin, changes)
	if err != nil {
		return err
	}
	success.Fprint(c.out, "Account updated. ")
	c.printSummary(summary)
	return nil
}

func (c *cli) close(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: close <account_number>", errUsage)
	}
	number, err := parseNumber(args[0])
	if err != nil {
		return err
	}
	pin, err := c.readPin("PIN: ")
	if err != nil {
		return err
	}
	if err := c.svc.Close(ctx, number, pin); err != nil {
		return err
	}
	success.Fprintf(c.out, "Account %d closed\n", number)
	return nil
}

func (c *cli) printSummary(s account.Summary) {
	fmt.Fprintf(c.out, "#%d %s balance=", s.AccountNumber, s.OwnerName)
	amount.Fprintln(c.out, s.Balance.StringFixed(2))
}

func parseNumber(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: account number %q", errUsage, s)
	}
	return n, nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q", errUsage, s)
	}
	return d, nil
}

// terminalPinReader hides the PIN when in is a terminal and otherwise reads
// one line, so the CLI can be scripted.
func terminalPinReader(in *os.File, prompt io.Writer) func(string) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return lineReader(in)
	}
	return func(p string) (string, error) {
		fmt.Fprint(prompt, p)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read PIN: %w", err)
		}
		return string(b), nil
	}
}

func lineReader(r io.Reader) func(string) (string, error) {
	br := bufio.NewReader(r)
	return func(string) (string, error) {
		line, err := br.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return "", fmt.Errorf("read PIN: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}

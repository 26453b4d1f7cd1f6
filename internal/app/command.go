package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/klauspost/cpuid/v2"

	"github.com/bft-labs/primes/internal/domain"
	"github.com/bft-labs/primes/pkg/log"
	"github.com/bft-labs/primes/pkg/prime"
	"github.com/bft-labs/primes/pkg/sieve"
)

// CommandConfig contains the output settings of a Command.
type CommandConfig struct {
	// Separator is written between primes. Empty means a single space.
	Separator string

	// Count prints only how many primes a range holds.
	Count bool
}

// Command runs one invocation of the primes CLI.
type Command struct {
	config CommandConfig
	sieve  *sieve.Sieve
	logger log.Logger
	out    io.Writer
	errOut io.Writer
}

// NewCommand creates a command writing results to out and input errors to errOut.
// A nil sieve uses the default budget; a nil logger discards log output.
func NewCommand(config CommandConfig, s *sieve.Sieve, logger log.Logger, out, errOut io.Writer) *Command {
	if config.Separator == "" {
		config.Separator = " "
	}
	if s == nil {
		s = sieve.New()
	}
	if logger == nil {
		logger = log.NoopLogger{}
	}
	return &Command{
		config: config,
		sieve:  s,
		logger: logger,
		out:    out,
		errOut: errOut,
	}
}

// Run executes the command for the given positional arguments.
// Invalid input is reported on the error stream and yields a nil error.
func (c *Command) Run(args []string) error {
	c.logger.Debug("host",
		log.String("cpu", cpuid.CPU.BrandName),
		log.Int("cores", cpuid.CPU.PhysicalCores),
		log.Int("args", len(args)),
	)

	var err error
	switch len(args) {
	case 1:
		err = c.check(args[0])
	case 2:
		err = c.list(args[0], args[1])
	default:
		c.logger.Debug("unsupported argument count, nothing to do", log.Int("args", len(args)))
		return nil
	}

	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		c.logger.Debug("rejected input", log.String("arg", invalid.Arg))
		_, werr := fmt.Fprintf(c.errOut, "Error: %v\n", invalid)
		return werr
	}
	return err
}

func (c *Command) check(arg string) error {
	v, err := ParseValue(arg)
	if err != nil {
		return err
	}

	verdict := "Not prime"
	if prime.IsPrime(v) {
		verdict = "Is prime"
	}
	_, err = fmt.Fprintln(c.out, verdict)
	return err
}

func (c *Command) list(a, b string) error {
	start, err := ParseValue(a)
	if err != nil {
		return err
	}
	end, err := ParseValue(b)
	if err != nil {
		return err
	}

	primes, err := c.sieve.PrimesInRange(start, end)
	if err != nil {
		return fmt.Errorf("primes in range: %w", err)
	}

	w := bufio.NewWriter(c.out)
	if c.config.Count {
		w.WriteString(strconv.Itoa(len(primes)))
	} else {
		var buf []byte
		for i, p := range primes {
			if i > 0 {
				w.WriteString(c.config.Separator)
			}
			buf = strconv.AppendUint(buf[:0], p, 10)
			w.Write(buf)
		}
	}
	w.WriteByte('\n')
	return w.Flush()
}

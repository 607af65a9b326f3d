package enum

import (
	"runtime"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// MaxVars is the largest supported number of variables. Above 3 the run is
// already practically intractable, but up to 5 is accepted.
const MaxVars = 5

// defaultMaxOps gives, per n, a ceiling at which a run terminates in
// reasonable time. n=1 and n=2 complete their 4 and 16 tables well under
// these; n>=3 stops incomplete.
var defaultMaxOps = [MaxVars + 1]int{0, 2, 3, 3, 2, 2}

// config carries the parameters of a run.
type config struct {
	n       int // number of variables
	maxOps  int // size ceiling, in binary operators
	workers int // goroutines evaluating one size class
	log     logrus.FieldLogger
}

func makeconfig() *config {
	return &config{
		n:       3,
		workers: runtime.NumCPU(),
		log:     logrus.StandardLogger(),
	}
}

func (c *config) validate() error {
	if c.n < 1 || c.n > MaxVars {
		return errors.Errorf("n must be between 1 and %d, got %d", MaxVars, c.n)
	}
	if c.maxOps < 0 {
		return errors.Errorf("max operator count must not be negative, got %d", c.maxOps)
	}
	if c.maxOps == 0 {
		c.maxOps = defaultMaxOps[c.n]
	}
	if c.workers <= 0 {
		c.workers = runtime.NumCPU()
	}
	return nil
}

// An Option configures a run.
type Option func(*config)

// N is a configuration option (function). Used as a parameter in Run it sets
// the number of variables formulas range over. The default is 3.
func N(n int) Option {
	return func(c *config) { c.n = n }
}

// MaxOps is a configuration option (function). Used as a parameter in Run it
// sets the generation ceiling, in binary operators per formula. Zero selects
// a per-n default. The ceiling bounds memory: every formula up to it stays
// resident for the whole run.
func MaxOps(k int) Option {
	return func(c *config) { c.maxOps = k }
}

// Workers is a configuration option (function). Used as a parameter in Run
// it sets how many goroutines evaluate truth tables within one size class.
// Values below 1 select the number of CPUs.
func Workers(w int) Option {
	return func(c *config) { c.workers = w }
}

// Logger is a configuration option (function). Used as a parameter in Run it
// sets the logger progress is reported to. The default is the standard
// logrus logger.
func Logger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}

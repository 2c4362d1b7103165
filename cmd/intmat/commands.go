// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"time"

	"github.com/katalvlaran/intmat/codec"
	"github.com/katalvlaran/intmat/internal/config"
	"github.com/katalvlaran/intmat/matrix"
	"go.uber.org/zap"
)

const stdinOperand = "-"

type app struct {
	cfg    config.Config
	log    *zap.SugaredLogger
	stdin  io.Reader
	stdout io.Writer
}

type command struct {
	nargs int
	run   func(a *app, args []string) error
}

var commands = map[string]command{
	"sum":           {2, binary(matrix.Sum)},
	"sub":           {2, binary(matrix.Diff)},
	"product":       {2, binary(matrix.Product)},
	"hadamard":      {2, binary(matrix.Hadamard)},
	"scale":         {2, (*app).scale},
	"transpose":     {1, (*app).transpose},
	"identity":      {1, (*app).identity},
	"random":        {-1, (*app).random},
	"equal":         {2, (*app).equal},
	"show":          {1, (*app).show},
	"sample-config": {1, (*app).sampleConfig},
}

func (a *app) dispatch(name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	if cmd.nargs >= 0 && len(args) != cmd.nargs {
		return fmt.Errorf("%w: %s takes %d operands, got %d", errUsage, name, cmd.nargs, len(args))
	}
	a.log.Debugw("command", "name", name, "args", args)
	start := time.Now()
	if err := cmd.run(a, args); err != nil {
		return err
	}
	a.log.Infow("command done", "name", name, "elapsed", time.Since(start))

	return nil
}

// load reads one operand.
func (a *app) load(path string) (*matrix.Dense, error) {
	var (
		m   *matrix.Dense
		err error
	)
	if path == stdinOperand {
		m, err = codec.Parse(a.stdin, a.cfg.CodecOptions()...)
	} else {
		m, err = codec.LoadFile(path, a.cfg.CodecOptions()...)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Debugw("loaded", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

// emit writes the result to cfg.Output or stdout.
func (a *app) emit(m *matrix.Dense) error {
	defer m.Release()
	if a.cfg.Output == "" {
		return codec.Dump(a.stdout, m)
	}
	if err := codec.DumpFile(a.cfg.Output, m, a.cfg.CodecOptions()...); err != nil {
		return err
	}
	a.log.Infow("wrote", "path", a.cfg.Output, "rows", m.Rows(), "cols", m.Cols())

	return nil
}

func binary(op func(a, b matrix.Matrix, opts ...matrix.Option) (*matrix.Dense, error)) func(*app, []string) error {
	return func(a *app, args []string) error {
		x, err := a.load(args[0])
		if err != nil {
			return err
		}
		defer x.Release()
		y, err := a.load(args[1])
		if err != nil {
			return err
		}
		defer y.Release()

		res, err := op(x, y, a.cfg.MatrixOptions()...)
		if err != nil {
			return err
		}
		return a.emit(res)
	}
}

func (a *app) scale(args []string) error {
	k, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: scale factor %q: %v", errUsage, args[1], err)
	}
	m, err := a.load(args[0])
	if err != nil {
		return err
	}
	defer m.Release()

	res, err := matrix.ScalarProduct(m, k, a.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	return a.emit(res)
}

func (a *app) transpose(args []string) error {
	m, err := a.load(args[0])
	if err != nil {
		return err
	}
	defer m.Release()

	res, err := matrix.T(m, a.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	return a.emit(res)
}

func (a *app) identity(args []string) error {
	n, err := atoiArgs(args)
	if err != nil {
		return err
	}
	res, err := matrix.NewIdentity(n[0], a.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	return a.emit(res)
}

// random accepts -seed before or after its four positional operands.
func (a *app) random(args []string) error {
	fs := flag.NewFlagSet("random", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	seed := fs.Int64("seed", 0, "")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: random: %v", errUsage, err)
	}
	pos := fs.Args()
	if len(pos) > 4 {
		if err := fs.Parse(pos[4:]); err != nil {
			return fmt.Errorf("%w: random: %v", errUsage, err)
		}
		if fs.NArg() != 0 {
			return fmt.Errorf("%w: random: unexpected %q", errUsage, fs.Args())
		}
		pos = pos[:4]
	}
	if len(pos) != 4 {
		return fmt.Errorf("%w: random takes rows cols min max, got %d operands", errUsage, len(pos))
	}
	n, err := atoiArgs(pos)
	if err != nil {
		return err
	}

	var rng *rand.Rand
	seeded := false
	fs.Visit(func(f *flag.Flag) { seeded = seeded || f.Name == "seed" })
	if seeded {
		rng = rand.New(rand.NewSource(*seed))
	}
	res, err := matrix.NewRandom(n[0], n[1], n[2], n[3], rng, a.cfg.MatrixOptions()...)
	if err != nil {
		return err
	}
	return a.emit(res)
}

func (a *app) equal(args []string) error {
	x, err := a.load(args[0])
	if err != nil {
		return err
	}
	defer x.Release()
	y, err := a.load(args[1])
	if err != nil {
		return err
	}
	defer y.Release()

	if !matrix.Equal(x, y) {
		fmt.Fprintln(a.stdout, "different")
		return errDifferent
	}
	fmt.Fprintln(a.stdout, "equal")

	return nil
}

func (a *app) show(args []string) error {
	m, err := a.load(args[0])
	if err != nil {
		return err
	}
	defer m.Release()

	_, err = fmt.Fprintf(a.stdout, "%d×%d\n%s", m.Rows(), m.Cols(), m)
	return err
}

func (a *app) sampleConfig(args []string) error {
	return config.CreateSample(args[0])
}

func atoiArgs(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("%w: operand %q is not an integer", errUsage, s)
		}
		out[i] = v
	}

	return out, nil
}

// SPDX-FileCopyrightText: 2026 The seqview Authors
//
// SPDX-License-Identifier: MIT

// seqdump prints or extends a sequence stored by one of the seqview backends.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterbourgon/ff/v2"
	"github.com/peterbourgon/ff/v2/ffcli"
	"github.com/pkg/errors"
	"go.mindeco.de/logging"

	"github.com/ssbc/seqview"
	"github.com/ssbc/seqview/codec/cbor"
	seqjson "github.com/ssbc/seqview/codec/json"
	"github.com/ssbc/seqview/codec/msgpack"
	"github.com/ssbc/seqview/kv"
	"github.com/ssbc/seqview/sqlite"
)

var check = logging.CheckFatal

type store interface {
	seqview.Sequence[interface{}]
	Append(interface{}) (int, error)
	io.Closer
}

var codecs = map[string]seqview.NewCodecFunc{
	"json":    seqjson.New,
	"msgpack": msgpack.New,
	"cbor":    cbor.New,
}

type options struct {
	backend string
	codec   string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.backend, "backend", "sqlite", "storage backend: sqlite, badger or mkv")
	fs.StringVar(&o.codec, "codec", "json", "element encoding: json, msgpack or cbor")
}

func (o *options) newCodec() (seqview.Codec, error) {
	newCodec, ok := codecs[o.codec]
	if !ok {
		return nil, errors.Errorf("unknown codec %q", o.codec)
	}
	return newCodec(nil), nil
}

func (o *options) open(path string) (store, error) {
	c, err := o.newCodec()
	if err != nil {
		return nil, err
	}

	switch o.backend {
	case "sqlite":
		return sqlite.Open[interface{}](path, c)
	case "badger":
		return kv.OpenBadger[interface{}](path, c)
	case "mkv":
		return kv.OpenMKV[interface{}](path, c)
	}
	return nil, errors.Errorf("unknown backend %q", o.backend)
}

// parseSlice reads start:stop:step. Omitted parts default the usual way, depending on the sign of step.
func parseSlice(s string) (start, stop, step int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, 0, 0, errors.Errorf("invalid slice %q", s)
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}

	num := func(p string, def int) (int, error) {
		if p = strings.TrimSpace(p); p == "" {
			return def, nil
		}
		n, err := strconv.Atoi(p)
		return n, errors.Wrapf(err, "invalid slice bound %q", p)
	}

	if step, err = num(parts[2], 1); err != nil {
		return 0, 0, 0, err
	}

	defStart, defStop := seqview.Begin, seqview.End
	if step < 0 {
		defStart, defStop = seqview.End, seqview.Begin
	}
	if start, err = num(parts[0], defStart); err != nil {
		return 0, 0, 0, err
	}
	if stop, err = num(parts[1], defStop); err != nil {
		return 0, 0, 0, err
	}
	return start, stop, step, nil
}

// checker is implemented by stores that can verify their own consistency.
type checker interface {
	Check() error
}

// dump writes the elements of view selected by start, stop and step to w.
// With a nil enc every element is printed on its own line, otherwise enc encodes them.
func dump(w io.Writer, view *seqview.View[interface{}], start, stop, step int, reverse bool, enc seqview.Encoder) (int, error) {
	sub, err := view.Slice(start, stop, step)
	if err != nil {
		return 0, errors.Wrap(err, "failed to slice sequence")
	}

	elems := sub.All()
	if reverse {
		elems = sub.Backward()
	}

	var i int
	for v, err := range elems {
		if err != nil {
			return i, errors.Wrapf(err, "failed to read element %d", i)
		}
		if enc != nil {
			err = enc.Encode(v)
		} else {
			_, err = fmt.Fprintf(w, "%d: %v\n", i, v)
		}
		if err != nil {
			return i, errors.Wrapf(err, "failed to write element %d", i)
		}
		i++
	}
	return i, nil
}

// appendFrom appends every value dec yields until io.EOF and returns their positions.
func appendFrom(st store, dec seqview.Decoder) ([]int, error) {
	var seqs []int
	for {
		v, err := dec.Decode()
		if err == io.EOF {
			return seqs, nil
		} else if err != nil {
			return seqs, errors.Wrapf(err, "invalid value #%d", len(seqs))
		}

		seq, err := st.Append(v)
		if err != nil {
			return seqs, errors.Wrap(err, "failed to append")
		}
		seqs = append(seqs, seq)
	}
}

func main() {
	logging.SetupLogging(nil)
	log := logging.Logger("seqdump")

	var (
		dumpOpts   options
		appendOpts options
		slice      string
		reverse    bool
		encode     bool
		verify     bool
	)

	dumpFlags := flag.NewFlagSet("seqdump dump", flag.ExitOnError)
	dumpOpts.register(dumpFlags)
	dumpFlags.StringVar(&slice, "slice", ":", "only print the elements selected by start:stop:step")
	dumpFlags.BoolVar(&reverse, "reverse", false, "print the selected elements last to first")
	dumpFlags.BoolVar(&encode, "encode", false, "write the elements with the store codec instead of one per line")
	dumpFlags.BoolVar(&verify, "check", false, "verify the store before dumping (kv backends)")

	appendFlags := flag.NewFlagSet("seqdump append", flag.ExitOnError)
	appendOpts.register(appendFlags)

	dumpCmd := &ffcli.Command{
		Name:       "dump",
		ShortUsage: "seqdump dump [flags] <path>",
		ShortHelp:  "print the elements of a stored sequence",
		FlagSet:    dumpFlags,
		Options:    []ff.Option{ff.WithEnvVarPrefix("SEQDUMP")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) != 1 {
				return flag.ErrHelp
			}

			start, stop, step, err := parseSlice(slice)
			if err != nil {
				return err
			}

			st, err := dumpOpts.open(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to open sequence")
			}
			defer st.Close()

			if c, ok := st.(checker); ok && verify {
				if err := c.Check(); err != nil {
					return errors.Wrap(err, "consistency check failed")
				}
				log.Log("event", "checked", "backend", dumpOpts.backend)
			}

			view, err := seqview.New[interface{}](st)
			if err != nil {
				return err
			}
			log.Log("event", "opened", "backend", dumpOpts.backend, "codec", dumpOpts.codec, "len", view.Len())

			var enc seqview.Encoder
			if encode {
				c, err := dumpOpts.newCodec()
				if err != nil {
					return err
				}
				enc = c.NewEncoder(os.Stdout)
			} else {
				fmt.Println(view.String())
			}

			n, err := dump(os.Stdout, view, start, stop, step, reverse, enc)
			if err != nil {
				return err
			}
			log.Log("event", "dumped", "count", n)
			return nil
		},
	}

	appendCmd := &ffcli.Command{
		Name:       "append",
		ShortUsage: "seqdump append [flags] <path> [json value...]",
		ShortHelp:  "append JSON encoded values, from the arguments or stdin, to a stored sequence",
		FlagSet:    appendFlags,
		Options:    []ff.Option{ff.WithEnvVarPrefix("SEQDUMP")},
		Exec: func(ctx context.Context, args []string) error {
			if len(args) < 1 {
				return flag.ErrHelp
			}

			st, err := appendOpts.open(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to open sequence")
			}
			defer st.Close()

			input := io.Reader(os.Stdin)
			if len(args) > 1 {
				input = strings.NewReader(strings.Join(args[1:], "\n"))
			}

			seqs, err := appendFrom(st, seqjson.New(nil).NewDecoder(input))
			if err != nil {
				return err
			}
			log.Log("event", "appended", "count", len(seqs))
			return nil
		},
	}

	root := &ffcli.Command{
		ShortUsage:  "seqdump <subcommand> [flags] <path>",
		Subcommands: []*ffcli.Command{dumpCmd, appendCmd},
		Exec: func(context.Context, []string) error {
			return flag.ErrHelp
		},
	}

	err := root.ParseAndRun(context.Background(), os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(2)
	}
	check(err)
}

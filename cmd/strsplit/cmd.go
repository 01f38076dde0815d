package main

import (
	"bytes"
	"io"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/indigo-web/strsplit"
	"github.com/indigo-web/strsplit/config"
	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ErrInputTooLarge = errors.New("input exceeds the limit")

func command(logger log.Logger) *cobra.Command {
	s := &splitter{
		cfg:    config.Default(),
		logger: logger,
	}

	cmd := &cobra.Command{
		Use:   "strsplit [flags] [text...]",
		Short: "Split text by a delimiter",
		Long: `strsplit splits every passed argument by the delimiter and prints the
segments. When no argument is passed, the whole stdin is read and split instead.

A trailing delimiter results in a trailing empty segment, and the text without
delimiters at all is printed as a single segment.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Run(cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	cfg := s.cfg
	cmd.Flags().StringVarP(&cfg.Delimiter.Text, "delimiter", "d", cfg.Delimiter.Text, "Delimiter to split by.")
	cmd.Flags().BoolVarP(&cfg.Delimiter.Char, "char", "c", cfg.Delimiter.Char, "Treat the delimiter as a single character.")
	cmd.Flags().BoolVar(&cfg.Output.First, "first", cfg.Output.First, "Print only the first segment.")
	cmd.Flags().BoolVarP(&cfg.Output.Count, "count", "n", cfg.Output.Count, "Print only the number of segments.")
	cmd.Flags().StringVarP((*string)(&cfg.Output.Format), "output", "o", string(cfg.Output.Format), "Output format: lines or json.")
	cmd.Flags().Int64Var(&cfg.Input.MaxSize, "input.max-size", cfg.Input.MaxSize, "Maximal number of bytes read from stdin.")
	cmd.Flags().StringVar(&cfg.Log.Level, "log.level", cfg.Log.Level, "Log level: debug, info, warn or error.")

	return cmd
}

type splitter struct {
	cfg    *config.Config
	logger log.Logger
}

func (s *splitter) Run(in io.Reader, out io.Writer, args []string) error {
	if err := s.cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logger := level.NewFilter(s.logger, allowLevel(s.cfg.Log.Level))
	delim, err := s.cfg.Delimiter.Build()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		data, err := io.ReadAll(io.LimitReader(in, s.cfg.Input.MaxSize+1))
		if err != nil {
			return errors.Wrap(err, "reading stdin")
		}

		if int64(len(data)) > s.cfg.Input.MaxSize {
			return errors.Wrapf(ErrInputTooLarge, "limit is %d bytes", s.cfg.Input.MaxSize)
		}

		_ = level.Debug(logger).Log("msg", "read stdin", "bytes", len(data))
		// the line terminator of the input isn't a part of the text itself
		if trimmed, found := bytes.CutSuffix(data, []byte{'\n'}); found {
			data = bytes.TrimSuffix(trimmed, []byte{'\r'})
		}

		return s.print(out, strsplit.NewBytes(data, delim))
	}

	for i, arg := range args {
		_ = level.Debug(logger).Log("msg", "splitting argument", "index", i, "bytes", len(arg))

		if err = s.print(out, strsplit.New(arg, delim)); err != nil {
			return err
		}
	}

	return nil
}

func (s *splitter) print(out io.Writer, split *strsplit.Split) error {
	var segments []string

	switch {
	case s.cfg.Output.Count:
		var n int
		for range split.All() {
			n++
		}

		if s.cfg.Output.Format == config.JSON {
			return s.encode(out, n)
		}

		return s.write(out, strconv.Itoa(n))
	case s.cfg.Output.First:
		segment, _ := split.Next()
		segments = []string{segment}
	default:
		for segment := range split.All() {
			segments = append(segments, segment)
		}
	}

	if s.cfg.Output.Format == config.JSON {
		return s.encode(out, segments)
	}

	for _, segment := range segments {
		if err := s.write(out, segment); err != nil {
			return err
		}
	}

	return nil
}

func (s *splitter) write(out io.Writer, line string) error {
	_, err := io.WriteString(out, line+"\n")
	return errors.Wrap(err, "writing output")
}

func (s *splitter) encode(out io.Writer, v any) error {
	return errors.Wrap(json.NewEncoder(out).Encode(v), "encoding output")
}

func allowLevel(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowInfo()
	}
}

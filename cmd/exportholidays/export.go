package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	trholiday "github.com/rabitt1ove/tr-holidays"
)

// ErrInvalidOptions wraps flag validation failures.
var ErrInvalidOptions = errors.New("invalid options")

const (
	formatCSV  = "csv"
	formatJSON = "json"
	formatCBOR = "cbor"

	encodingUTF8    = "utf-8"
	encodingLatin5  = "iso-8859-9"
	dateLayout      = "2006-01-02"
	defaultFileMode = 0o644
)

var validate = validator.New()

type exportOptions struct {
	Region   string `validate:"required,oneof=turkey tr trnc kktc"`
	From     int    `validate:"gte=1900,lte=2200"`
	To       int    `validate:"gte=1900,lte=2200,gtefield=From"`
	Saturday bool
	Format   string `validate:"oneof=csv json cbor"`
	Encoding string `validate:"oneof=utf-8 iso-8859-9"`
	Output   string
}

func (o exportOptions) validate() error {
	if err := validate.Struct(o); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	if o.Encoding != encodingUTF8 && o.Format != formatCSV {
		return fmt.Errorf("%w: --encoding %s only applies to csv output", ErrInvalidOptions, o.Encoding)
	}
	return nil
}

// row is one exported holiday.
type row struct {
	Date string `json:"date" cbor:"date"`
	Name string `json:"name" cbor:"name"`
	Kind string `json:"kind" cbor:"kind"`
}

func newRootCmd() *cobra.Command {
	year := time.Now().Year()
	opts := exportOptions{}

	cmd := &cobra.Command{
		Use:          "exportholidays",
		Short:        "Export the Turkish or TRNC holiday table for a range of years",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Region, "region", "turkey", "jurisdiction: turkey or trnc")
	f.IntVar(&opts.From, "from", year, "first year to export")
	f.IntVar(&opts.To, "to", year, "last year to export (inclusive)")
	f.BoolVar(&opts.Saturday, "saturday", false, "count Saturdays as weekend days")
	f.StringVar(&opts.Format, "format", formatCSV, "output format: csv, json or cbor")
	f.StringVar(&opts.Encoding, "encoding", encodingUTF8, "csv text encoding: utf-8 or iso-8859-9")
	f.StringVarP(&opts.Output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func run(stdout io.Writer, opts exportOptions) error {
	if err := opts.validate(); err != nil {
		return err
	}
	region, err := trholiday.ParseRegion(opts.Region)
	if err != nil {
		return err
	}
	cal, err := trholiday.NewRegional(region, opts.Saturday)
	if err != nil {
		return err
	}

	rows := collect(cal, opts.From, opts.To)

	w := stdout
	if opts.Output != "" {
		f, err := os.OpenFile(opts.Output, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, defaultFileMode)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeRows(w, rows, opts.Format, opts.Encoding); err != nil {
		return fmt.Errorf("writing %s: %w", opts.Format, err)
	}

	logger.WithFields(logrus.Fields{
		"region": region.String(),
		"from":   opts.From,
		"to":     opts.To,
		"format": opts.Format,
		"rows":   len(rows),
	}).Info("exported holidays")
	return nil
}

// collect lists the named holidays of the years [from, to], sorted by date.
func collect(cal *trholiday.Regional, from, to int) []row {
	holidays := cal.HolidaysBetween(
		time.Date(from, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(to, time.December, 31, 0, 0, 0, 0, time.UTC),
	)
	rows := make([]row, len(holidays))
	for i, h := range holidays {
		rows[i] = row{Date: h.Date.Format(dateLayout), Name: h.Name, Kind: h.Kind.String()}
	}
	logger.Debugf("collected %d holidays for %d-%d", len(rows), from, to)
	return rows
}

func writeRows(w io.Writer, rows []row, format, encoding string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case formatCBOR:
		b, err := cbor.Marshal(rows)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case formatCSV:
		if encoding == encodingLatin5 {
			tw := transform.NewWriter(w, charmap.ISO8859_9.NewEncoder())
			if err := writeCSV(tw, rows); err != nil {
				return err
			}
			return tw.Close()
		}
		return writeCSV(w, rows)
	}
	return fmt.Errorf("unknown format %q", format)
}

func writeCSV(w io.Writer, rows []row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "name", "kind"}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Date, r.Name, r.Kind}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

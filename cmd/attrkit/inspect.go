package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/attrkit/attrkit/model"
)

var (
	inspectFillable []string
	inspectGuarded  []string
	inspectHidden   []string
	inspectVisible  []string
	inspectCasts    []string
	inspectForce    bool
	inspectCompact  bool
	inspectAssignID bool
	inspectVerbose  bool
)

func init() {
	flags := inspectCmd.Flags()
	flags.StringSliceVar(&inspectFillable, "fillable", nil, "Attributes allowed through mass assignment")
	flags.StringSliceVar(&inspectGuarded, "guarded", nil, `Attributes blocked from mass assignment ("*" guards all)`)
	flags.StringSliceVar(&inspectHidden, "hidden", nil, "Attributes excluded from output")
	flags.StringSliceVar(&inspectVisible, "visible", nil, "Restrict output to these attributes")
	flags.StringSliceVar(&inspectCasts, "cast", nil, "Attribute casts as key=tag (e.g. age=int, meta=array)")
	flags.BoolVar(&inspectForce, "force", false, "Bypass mass-assignment protection")
	flags.BoolVar(&inspectCompact, "compact", false, "Print compact JSON instead of pretty-printed")
	flags.BoolVar(&inspectAssignID, "assign-id", false, `Stamp a fresh UUID under "id" before export`)
	flags.BoolVarP(&inspectVerbose, "verbose", "v", false, "Log attribute-layer decisions")
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Fill a model from JSON input and print its exported view",
	Long: `Reads a JSON object from the given file (or stdin), fills a model with it
under the configured mass-assignment policy, and prints the exported view with
casts and visibility filtering applied.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if inspectVerbose {
			logger, err := zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck
			model.SetLogger(logger)
		}

		attrs, err := readInput(args)
		if err != nil {
			return err
		}

		def := model.Define("inspect").
			Fillable(inspectFillable...).
			Guarded(inspectGuarded...).
			Hidden(inspectHidden...).
			Visible(inspectVisible...)

		casts, err := parseCasts(inspectCasts)
		if err != nil {
			return err
		}
		def.Casts(casts)

		m := model.New(def)
		if inspectForce {
			m.ForceFill(attrs)
		} else if _, err := m.Fill(attrs); err != nil {
			if model.IsMassAssignment(err) {
				color.Yellow("hint: pass --force, or add the key to --fillable")
				cmd.SilenceUsage = true
				return fmt.Errorf("mass assignment rejected: %w", err)
			}
			return err
		}

		if inspectAssignID {
			m.Set("id", uuid.NewString())
		}

		flags := model.JSONFlags(0)
		if !inspectCompact {
			flags |= model.JSONPretty
		}

		out, err := m.ToJSON(flags)
		if err != nil {
			return fmt.Errorf("failed to render output: %w", err)
		}
		fmt.Println(out)
		return nil
	},
}

// readInput decodes a JSON object from the file argument, or stdin when no
// argument is given.
func readInput(args []string) (map[string]interface{}, error) {
	var reader io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var attrs map[string]interface{}
	if err := json.NewDecoder(reader).Decode(&attrs); err != nil {
		return nil, fmt.Errorf("input must be a JSON object: %w", err)
	}
	return attrs, nil
}

// parseCasts parses key=tag pairs from the --cast flag.
func parseCasts(pairs []string) (map[string]string, error) {
	casts := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, tag, ok := strings.Cut(pair, "=")
		if !ok || key == "" || tag == "" {
			return nil, fmt.Errorf("invalid cast %q: expected key=tag", pair)
		}
		casts[key] = tag
	}
	return casts, nil
}

package rmxtheory

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rapidmidiex/rmxtheory/config"
	"github.com/rapidmidiex/rmxtheory/pitch"
	"github.com/rapidmidiex/rmxtheory/scale"
	"github.com/rapidmidiex/rmxtheory/wsmsg"
)

// NewRootCmd builds the command tree. Flags override values from cfg.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "rmxtheory",
		Short:        "Note names and scales for the RMX keyboard",
		Long: `Note names and scales for the RMX keyboard.

Run without a subcommand to open the interactive keyboard. --root,
--altscreen and --debug only apply to it. --scale is shared with the
scale subcommand.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cfg)
		},
	}
	root.Flags().StringVar(&cfg.Root, "root", cfg.Root, "starting root note")
	root.PersistentFlags().StringVar(&cfg.Scale, "scale", cfg.Scale, "starting scale")
	root.Flags().BoolVar(&cfg.AltScreen, "altscreen", cfg.AltScreen, "use the terminal's alternate screen")
	root.Flags().StringVar(&cfg.DebugLog, "debug", cfg.DebugLog, "write debug logs to this file")

	root.AddCommand(
		newNameCmd(),
		newSpellCmd(),
		newScaleCmd(cfg),
		newScalesCmd(),
	)
	return root
}

func newNameCmd() *cobra.Command {
	var (
		avoid string
		line  bool
	)
	cmd := &cobra.Command{
		Use:   "name PITCH...",
		Short: "Print the names of pitches given as MIDI numbers or note names",
		Example: `  rmxtheory name 60 61 62
  rmxtheory name --avoid D 61
  rmxtheory name --line 62 61 60`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pitches := make([]pitch.Pitch, 0, len(args))
			for _, a := range args {
				p, err := pitch.Parse(a)
				if err != nil {
					return err
				}
				pitches = append(pitches, p)
			}

			var names []string
			switch {
			case line:
				names = pitch.SpellLine(pitches)
			case avoid != "":
				neighbor, err := pitch.ParseLetter(avoid)
				if err != nil {
					return fmt.Errorf("--avoid: %w", err)
				}
				for _, p := range pitches {
					names = append(names, p.NameAvoiding(neighbor))
				}
			default:
				for _, p := range pitches {
					names = append(names, p.Name())
				}
			}

			for i, n := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", int(pitches[i]), n)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&avoid, "avoid", "", "letter of a neighboring note to avoid")
	cmd.Flags().BoolVar(&line, "line", false, "spell the pitches as one melodic line")
	return cmd
}

func newSpellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "spell CLASS",
		Short: "List the spellings of a pitch class (0-11)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			class, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("pitch class: %w", err)
			}
			names := make([]string, 0, 2)
			for _, s := range pitch.Spellings(class) {
				names = append(names, s.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, " "))
			return nil
		},
	}
}

func newScaleCmd(cfg *config.Config) *cobra.Command {
	var (
		root       string
		start, end int
		asJSON     bool
		velocity   int
	)
	cmd := &cobra.Command{
		Use:   "scale [NAME]",
		Short: "Print the notes of a scale",
		Example: `  rmxtheory scale dorian --root D3
  rmxtheory scale major --start -7 --end 8
  rmxtheory scale blues --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := cfg.Scale
			if len(args) == 1 {
				name = args[0]
			}
			named, ok := scale.Lookup(name)
			if !ok {
				return fmt.Errorf("%w: unknown scale %q", scale.ErrInvalidScale, name)
			}

			p, err := pitch.Parse(root)
			if err != nil {
				return fmt.Errorf("--root: %w", err)
			}

			if !cmd.Flags().Changed("end") {
				end = start + named.Scale.Len() + 1
			}
			seq, err := scale.NewSequence(p, named.Scale, start, end)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !asJSON {
				fmt.Fprintf(out, "%s %s (%s)\n", p.Name(), named.Name, named.Scale)
				fmt.Fprintln(out, strings.Join(seq.Names(), " "))
				return nil
			}

			envelopes, err := wsmsg.FromSequence(uuid.Nil, named.Name, seq, velocity)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(out)
			for _, e := range envelopes {
				if err := enc.Encode(e); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", cfg.Root, "root note")
	cmd.Flags().IntVar(&start, "start", 0, "first scale degree, relative to the root")
	cmd.Flags().IntVar(&end, "end", 0, "scale degree to stop before (default one octave past start)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "write RMX messages as JSON lines")
	cmd.Flags().IntVar(&velocity, "velocity", cfg.Velocity, "velocity for --json note messages")
	return cmd
}

func newScalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scales",
		Short: "List the built-in scales",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range scale.Catalog {
				fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", n.Name, n.Scale)
			}
		},
	}
}

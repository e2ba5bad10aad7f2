package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridcut/config"
)

// generateCommand creates the generate command, which writes a synthetic
// denoising problem usable as input to solve.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		s      config.Synth
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic noisy problem file",
		Long: `Generate a grid split into vertical label bands, corrupt each site with
probability --noise, and write the problem as TOML.`,
		Example: `  # A noisy 3-label image
  gridcut generate --width 32 --height 16 --labels 3 --noise 0.1 -o bands.toml
  gridcut solve bands.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.Synthesize(s)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := p.Encode(w); err != nil {
				return err
			}
			if output != "" {
				c.Logger.Info("Wrote problem", "path", output, "sites", len(p.Data.Observations))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&s.Width, "width", 16, "grid width")
	cmd.Flags().IntVar(&s.Height, "height", 8, "grid height")
	cmd.Flags().IntVar(&s.Depth, "depth", 1, "grid depth")
	cmd.Flags().IntVar(&s.Labels, "labels", 3, "number of labels (and bands)")
	cmd.Flags().Float64Var(&s.Noise, "noise", 0.1, "probability that a site is observed as a random label")
	cmd.Flags().Int64Var(&s.Scale, "scale", 4, "data penalty scale")
	cmd.Flags().Int64Var(&s.Weight, "weight", 3, "Potts smoothness weight")
	cmd.Flags().Int64Var(&s.Seed, "seed", 1, "random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return cmd
}

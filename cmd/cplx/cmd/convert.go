package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mathkit/core/log"
	"github.com/msto63/mathkit/utils/complexx"
	"github.com/msto63/mathkit/utils/mathx"
)

var convertPolar bool

var convertCmd = &cobra.Command{
	Use:   "convert <a> <b>",
	Short: "Convert between rectangular and polar form",
	Long: `Convert a complex number between rectangular and polar form.

By default the arguments are the real and imaginary parts. With --polar
they are magnitude and phase angle instead; the angle is read in radians
unless the display.angle_unit config key says "deg".`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid first argument %q: %w", args[0], err)
		}
		b, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid second argument %q: %w", args[1], err)
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var z complexx.Complex
		if convertPolar {
			theta := b
			if strings.EqualFold(cfg.GetString("display.angle_unit", "rad"), "deg") {
				theta = b * math.Pi / 180.0
			}
			z = complexx.FromPolar(a, theta)
		} else {
			z = complexx.New(a, b)
		}

		logger().Debug("converting", log.Fields{"polar_input": convertPolar})

		degrees := mathx.UnwrapAngleDegrees(z.Arg() * 180.0 / math.Pi)
		fmt.Printf("rectangular: %s\n", z)
		fmt.Printf("polar:       r=%g theta=%g rad (%g deg)\n",
			z.Abs(), z.Arg(), degrees)
		return nil
	},
}

func init() {
	convertCmd.Flags().BoolVarP(&convertPolar, "polar", "p", false,
		"interpret arguments as magnitude and phase in radians")
	rootCmd.AddCommand(convertCmd)
}

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mathkit/core/log"
	"github.com/msto63/mathkit/utils/complexx"
)

var calcCmd = &cobra.Command{
	Use:   "calc <op> <re1> <im1> <re2> <im2>",
	Short: "Arithmetic on two complex operands",
	Long: `Apply a binary operation to two complex numbers given as their
real and imaginary parts.

Operations: add, sub, mul, div, pow, eq

The eq operation compares the operands within a relative tolerance. The
tolerance is read from the compare.tolerance config key when a config
file is given.`,
	Args: cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := make([]float64, 4)
		for i, arg := range args[1:] {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("invalid operand %q: %w", arg, err)
			}
			parts[i] = v
		}

		z := complexx.New(parts[0], parts[1])
		w := complexx.New(parts[2], parts[3])
		op := strings.ToLower(args[0])

		logger().Debug("calculating", log.Fields{
			"operation": op,
			"left":      z.String(),
			"right":     w.String(),
		})

		switch op {
		case "add":
			fmt.Println(z.Add(w))
		case "sub":
			fmt.Println(z.Sub(w))
		case "mul":
			fmt.Println(z.Mul(w))
		case "div":
			fmt.Println(z.Div(w))
		case "pow":
			fmt.Println(z.Pow(w))
		case "eq":
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			tolerance := cfg.GetFloat("compare.tolerance", complexx.DefaultTolerance)
			fmt.Println(z.EqualsTol(w, tolerance))
		default:
			return fmt.Errorf("unknown operation %q (available: add, sub, mul, div, pow, eq)", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/mathkit/core/log"
	"github.com/msto63/mathkit/utils/complexx"
	"github.com/msto63/mathkit/utils/mathx"
)

// functions maps command-line names to the unary complex functions they
// invoke.
var functions = map[string]func(complexx.Complex) complexx.Complex{
	"sqrt":  complexx.Complex.Sqrt,
	"sqr":   complexx.Complex.Sqr,
	"exp":   complexx.Complex.Exp,
	"log":   complexx.Complex.Log,
	"inv":   complexx.Complex.Inv,
	"neg":   complexx.Complex.Neg,
	"conj":  complexx.Complex.Conj,
	"sin":   complexx.Complex.Sin,
	"cos":   complexx.Complex.Cos,
	"tan":   complexx.Complex.Tan,
	"asin":  complexx.Complex.Asin,
	"acos":  complexx.Complex.Acos,
	"atan":  complexx.Complex.Atan,
	"sinh":  complexx.Complex.Sinh,
	"cosh":  complexx.Complex.Cosh,
	"tanh":  complexx.Complex.Tanh,
	"asinh": complexx.Complex.Asinh,
	"acosh": complexx.Complex.Acosh,
	"atanh": complexx.Complex.Atanh,
}

func functionNames() string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

var fnCmd = &cobra.Command{
	Use:   "fn <name> <re> <im>",
	Short: "Apply an elementary function to a complex number",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, ok := functions[strings.ToLower(args[0])]
		if !ok {
			return fmt.Errorf("unknown function %q (available: %s)",
				args[0], functionNames())
		}
		re, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid real part %q: %w", args[1], err)
		}
		im, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid imaginary part %q: %w", args[2], err)
		}

		z := complexx.New(re, im)
		result := fn(z)

		logger().Debug("applied function", log.Fields{
			"function": strings.ToLower(args[0]),
			"input":    z.String(),
		})

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		digits := cfg.GetInt("display.digits", 12)
		displayRe, err := mathx.RoundDecimal(result.Re(), digits)
		if err != nil {
			return fmt.Errorf("invalid display.digits %d: %w", digits, err)
		}
		displayIm, _ := mathx.RoundDecimal(result.Im(), digits)

		fmt.Println(complexx.New(displayRe, displayIm))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fnCmd)
}

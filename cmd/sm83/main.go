// Command sm83 loads a raw binary into a fresh CPU and either runs it
// headlessly for a bounded number of steps or opens the interactive
// single-step debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sm83/cpu"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sm83",
		Short: "Sharp SM83 (Game Boy DMG) CPU core",
	}

	var loadAddr uint16
	var startPC uint16
	var maxSteps int

	runCmd := &cobra.Command{
		Use:   "run [program]",
		Short: "Load a raw binary and step it to completion or a step limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}

			c := cpu.New()
			c.Bus.Load(loadAddr, program)
			if cmd.Flags().Changed("start-pc") {
				c.PC = startPC
			} else {
				c.PC = loadAddr
			}

			steps := 0
			for maxSteps <= 0 || steps < maxSteps {
				if err := c.Step(); err != nil {
					return fmt.Errorf("stopped after %d steps: %w", steps, err)
				}
				steps++
			}
			fmt.Printf("ran %d steps; PC=0x%04x SP=0x%04x A=0x%02x\n", steps, c.PC, c.SP, c.Reg.A)
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&loadAddr, "load-addr", 0, "address to load the program at")
	runCmd.Flags().Uint16Var(&startPC, "start-pc", 0, "initial program counter (defaults to load-addr if unset)")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1000, "maximum instructions to execute (0 = unbounded)")

	debugCmd := &cobra.Command{
		Use:   "debug [program]",
		Short: "Load a raw binary and open the interactive single-step debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			program, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading program: %w", err)
			}
			cpu.New().Debug(program, loadAddr)
			return nil
		},
	}
	debugCmd.Flags().Uint16Var(&loadAddr, "load-addr", 0, "address to load the program at")

	rootCmd.AddCommand(runCmd, debugCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

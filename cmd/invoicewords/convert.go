package main

import (
	"fmt"

	"github.com/purposeinplay/go-invoicewords/amount"
	"github.com/purposeinplay/go-invoicewords/invoice"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var (
		upper         bool
		mention       bool
		currencyLabel string
	)

	cmd := &cobra.Command{
		Use:   "convert <amount>...",
		Short: "Print amounts in French words",
		Long: `Print each amount in French words.

The fractional part of an amount is dropped: 75000.50 is printed
as "soixante-quinze-mille".`,
		Example: `  invoicewords convert 21 1500
  invoicewords convert --mention 75000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mentioner := invoice.NewMentioner(invoice.WithCurrencyLabel(currencyLabel))

			for _, arg := range args {
				total, err := amount.NewFromUnitString(arg, amount.CFADecimals, amount.CurrencyXOF)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}

				line, err := convertLine(mentioner, total, upper, mention)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&upper, "upper", false, "print the words in upper case")
	cmd.Flags().BoolVar(&mention, "mention", false, "print the legal invoice sentence")
	cmd.Flags().StringVar(
		&currencyLabel,
		"currency-label",
		invoice.DefaultCurrencyLabel,
		"currency printed by --mention",
	)

	return cmd
}

func convertLine(
	mentioner *invoice.Mentioner,
	total *amount.Amount,
	upper, mention bool,
) (string, error) {
	switch {
	case mention:
		return mentioner.Mention(total)

	case upper:
		return mentioner.Words(total)

	default:
		return total.InWords()
	}
}

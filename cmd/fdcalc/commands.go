package main

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rgehrsitz/fdcalc/internal/calculation"
	"github.com/rgehrsitz/fdcalc/internal/config"
	"github.com/rgehrsitz/fdcalc/internal/domain"
	"github.com/rgehrsitz/fdcalc/internal/output"
)

// loadRequest reads the --input file, if any
func loadRequest(cmd *cobra.Command) (*config.RequestFile, error) {
	path, _ := cmd.Flags().GetString("input")
	if path == "" {
		return nil, nil
	}
	return config.NewInputParser().LoadRequestFromFile(path)
}

func decimalFlag(cmd *cobra.Command, name string, target error) (decimal.Decimal, error) {
	raw, _ := cmd.Flags().GetString(name)
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: --%s is required", target, name)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: --%s %q is not a number", target, name, raw)
	}
	return d, nil
}

func rateFlag(cmd *cobra.Command) (*decimal.Decimal, error) {
	if !cmd.Flags().Changed("rate") {
		return nil, nil
	}
	d, err := decimalFlag(cmd, "rate", domain.ErrInvalidRate)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func addPeriodFlags(cmd *cobra.Command) {
	cmd.Flags().Int("years", 0, "Term in years")
	cmd.Flags().Int("months", 0, "Term in months")
	cmd.Flags().Int("days", 0, "Term in days")
	cmd.Flags().String("start", "", "Start date (YYYY-MM-DD); selects date mode")
	cmd.Flags().String("maturity", "", "Maturity date (YYYY-MM-DD)")
	cmd.Flags().String("early-exit", "", "Premature closure date (YYYY-MM-DD)")
}

func periodFromFlags(cmd *cobra.Command) config.PeriodInput {
	var p config.PeriodInput
	p.Years, _ = cmd.Flags().GetInt("years")
	p.Months, _ = cmd.Flags().GetInt("months")
	p.Days, _ = cmd.Flags().GetInt("days")
	p.Start, _ = cmd.Flags().GetString("start")
	p.Maturity, _ = cmd.Flags().GetString("maturity")
	p.EarlyExit, _ = cmd.Flags().GetString("early-exit")
	return p
}

func depositRequest(cmd *cobra.Command) (domain.DepositRequest, error) {
	file, err := loadRequest(cmd)
	if err != nil {
		return domain.DepositRequest{}, err
	}
	if file != nil {
		if file.Deposit == nil {
			return domain.DepositRequest{}, fmt.Errorf("request file has no deposit section")
		}
		return file.Deposit.ToRequest()
	}

	principal, err := decimalFlag(cmd, "principal", domain.ErrInvalidAmount)
	if err != nil {
		return domain.DepositRequest{}, err
	}
	rate, err := rateFlag(cmd)
	if err != nil {
		return domain.DepositRequest{}, err
	}
	category, _ := cmd.Flags().GetString("category")
	return config.DepositInput{
		Principal:     principal,
		CustomerClass: category,
		RateOverride:  rate,
		Period:        periodFromFlags(cmd),
	}.ToRequest()
}

func interestCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Calculate term deposit interest and maturity value",
		Long: `Calculate the maturity value of a term deposit compounded quarterly.

Examples:
  fdcalc interest --principal 100000 --years 1
  fdcalc interest --principal 100000 --category senior --years 2 --months 6
  fdcalc interest --principal 100000 --start 2024-01-01 --maturity 2026-01-01 --early-exit 2025-01-01
  fdcalc interest --principal 150000 --years 5 --tax-saver
  fdcalc interest --input deposit.yaml --format html --save
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := depositRequest(cmd)
			if err != nil {
				return err
			}

			taxSaver, _ := cmd.Flags().GetBool("tax-saver")
			if taxSaver {
				rate, err := a.engine.TaxSaverRate(req.CustomerClass)
				if err != nil {
					return err
				}
				req.RateOverride = &rate
			}

			result, err := a.engine.CalculateDeposit(cmd.Context(), req)
			if err != nil {
				return err
			}
			if taxSaver {
				result.RateSlab = config.TaxSaverLabel
			}
			return a.render(cmd, a.builder.Deposit(req, result))
		},
	}
	cmd.Flags().String("principal", "", "Deposit amount")
	cmd.Flags().String("category", "general", "Customer category (general, staff, staff-senior, senior, super-senior)")
	cmd.Flags().String("rate", "", "Custom annual rate in percent, overriding the rate card")
	cmd.Flags().Bool("tax-saver", false, "Use the tax saver deposit rate")
	cmd.MarkFlagsMutuallyExclusive("rate", "tax-saver")
	addPeriodFlags(cmd)
	return cmd
}

func timePeriodCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time-period",
		Short: "Resolve a deposit term into days and years",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var input config.PeriodInput
			file, err := loadRequest(cmd)
			if err != nil {
				return err
			}
			if file != nil {
				if file.Deposit == nil {
					return fmt.Errorf("request file has no deposit section")
				}
				input = file.Deposit.Period
			} else {
				input = periodFromFlags(cmd)
			}

			period, err := input.ToPeriod()
			if err != nil {
				return err
			}
			span, err := calculation.ResolvePeriod(period)
			if err != nil {
				return err
			}
			a.logger.Sugar().Debugf("time-period: %d days", span.TotalDays)

			rows := []output.Row{
				{Label: "Total Days", Value: fmt.Sprintf("%d", span.TotalDays)},
				{Label: "Total Years", Value: span.TotalYears.StringFixed(4)},
				{Label: "Whole Months", Value: fmt.Sprintf("%d", span.TotalDays/calculation.DaysPerMonth)},
			}
			if dp, ok := period.(domain.DatePeriod); ok && dp.IsPremature() {
				rows = append(rows, output.Row{Label: "Closure", Value: "Premature (Broken Period)"})
			}
			return a.render(cmd, &output.Report{
				Bank:        a.builder.Bank,
				Title:       "Time Period",
				Sections:    []output.Section{{Title: "Resolved Period", Rows: rows}},
				GeneratedOn: a.builder.Now(),
				Footer:      a.builder.Footer,
				Result:      span,
			})
		},
	}
	addPeriodFlags(cmd)
	return cmd
}

func monthlyIncomeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monthly-income",
		Short: "Calculate the monthly income scheme payout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.MonthlyIncomeRequest
			file, err := loadRequest(cmd)
			if err != nil {
				return err
			}
			if file != nil {
				if file.MonthlyIncome == nil {
					return fmt.Errorf("request file has no monthly_income section")
				}
				if req, err = file.MonthlyIncome.ToRequest(); err != nil {
					return err
				}
			} else {
				principal, err := decimalFlag(cmd, "principal", domain.ErrInvalidAmount)
				if err != nil {
					return err
				}
				rate, err := rateFlag(cmd)
				if err != nil {
					return err
				}
				in := config.MonthlyIncomeInput{Principal: principal, RateOverride: rate}
				in.CustomerClass, _ = cmd.Flags().GetString("category")
				in.Years, _ = cmd.Flags().GetInt("years")
				in.Months, _ = cmd.Flags().GetInt("months")
				if req, err = in.ToRequest(); err != nil {
					return err
				}
			}

			result, err := a.engine.CalculateMonthlyIncome(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd, a.builder.MonthlyIncome(req, result))
		},
	}
	cmd.Flags().String("principal", "", "Deposit amount")
	cmd.Flags().String("category", "general", "Customer category")
	cmd.Flags().String("rate", "", "Custom annual rate in percent")
	cmd.Flags().Int("years", 0, "Term in years")
	cmd.Flags().Int("months", 0, "Term in months")
	return cmd
}

func chargesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charges",
		Short: "Calculate NEFT or IMPS transfer charges with GST",
		Example: `  fdcalc charges --product neft --amount 5000
  fdcalc charges --product imps --amount 150000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var req domain.ChargeRequest
			file, err := loadRequest(cmd)
			if err != nil {
				return err
			}
			if file != nil {
				if file.Charges == nil {
					return fmt.Errorf("request file has no charges section")
				}
				if req, err = file.Charges.ToRequest(); err != nil {
					return err
				}
			} else {
				amount, err := decimalFlag(cmd, "amount", domain.ErrInvalidAmount)
				if err != nil {
					return err
				}
				product, _ := cmd.Flags().GetString("product")
				if req, err = (config.ChargeInput{Product: product, Amount: amount}).ToRequest(); err != nil {
					return err
				}
			}

			result, err := a.engine.CalculateCharges(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd, a.builder.Charges(result))
		},
	}
	cmd.Flags().String("product", "neft", "Transfer type (neft, imps)")
	cmd.Flags().String("amount", "", "Transfer amount")
	return cmd
}

func eligibilityCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Check PMSBY, PMJJBY and APY eligibility by age",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input := config.EligibilityInput{}
			file, err := loadRequest(cmd)
			if err != nil {
				return err
			}
			if file != nil {
				if file.Eligibility == nil {
					return fmt.Errorf("request file has no eligibility section")
				}
				input = *file.Eligibility
			} else {
				input.BirthDate, _ = cmd.Flags().GetString("dob")
				input.AsOf, _ = cmd.Flags().GetString("as-of")
			}

			req, err := input.ToRequest()
			if err != nil {
				return err
			}
			result, err := a.engine.CheckEligibility(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.render(cmd, a.builder.Eligibility(result))
		},
	}
	cmd.Flags().String("dob", "", "Date of birth (YYYY-MM-DD)")
	cmd.Flags().String("as-of", "", "Evaluate as of this date (default: today)")
	return cmd
}

func ratesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the rate card with the best rate per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := a.engine.Tables.InterestRates
			if mis, _ := cmd.Flags().GetBool("monthly-income"); mis {
				table = a.engine.Tables.MonthlyIncome
			}
			return a.render(cmd, a.builder.Rates(table, calculation.BestRates(table)))
		},
	}
	cmd.Flags().Bool("monthly-income", false, "Show the monthly income scheme card instead of term deposits")
	return cmd
}

func validateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [tables-file]",
		Short: "Validate a tables file, or a request file with --request",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if isRequest, _ := cmd.Flags().GetBool("request"); isRequest {
				if _, err := parser.LoadRequestFromFile(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Request file %s is valid\n", args[0])
				return nil
			}

			tables, err := parser.LoadTablesFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tables file %s is valid (%d deposit slabs, %d monthly income slabs, %d charge tables)\n",
				args[0], len(tables.InterestRates.Slabs), len(tables.MonthlyIncome.Slabs), len(tables.Charges))
			return nil
		},
	}
	cmd.Flags().Bool("request", false, "Validate a request file instead of a tables file")
	return cmd
}

func exportTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export-tables [file]",
		Short: "Write the active rate, charge and scheme tables to a YAML file",
		Long: `Write the tables in use (built-in, or loaded with --tables) to a YAML file
that can be edited and passed back with --tables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SaveTables(a.engine.Tables, args[0]); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Tables written to %s\n", args[0])
			return nil
		},
	}
}

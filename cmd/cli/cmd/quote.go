// Package cmd - quote command
package cmd

import (
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lpboost/core/ladder"
	"lpboost/core/output"
	"lpboost/core/quote"
	"lpboost/core/tier"
	"lpboost/internal/config"
	"lpboost/internal/errors"
	"lpboost/internal/logging"
	"lpboost/internal/ratecard"
)

// Version is the engine version reported by the CLI and API
const Version = "0.1.0"

var (
	fromRank     string
	fromDivision string
	fromLP       float64
	toRank       string
	toDivision   string
	toLP         float64
	basePrice    float64
	tierName     string
	rateCardPath string
	outputFormat string
	noTable      bool
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote the price of a rank boost",
	Long: `Compute the LP gap from the current to the target rank and quote
the boost price under the selected growth tier.

Two totals are reported: the client path priced from your base price, and
the same path priced from a floor-adjusted base derived by compounding from
the bottom of the ladder up to your current standing.

Examples:
  lpboost quote --from Iron --from-div IV --to Silver --to-div IV
  lpboost quote --from Gold --from-div II --from-lp 40 --to-lp 50 --to Platinum --to-div IV --tier high
  lpboost quote --ratecard pricing.hcl --format json ...`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVar(&fromRank, "from", "Iron", "current rank")
	quoteCmd.Flags().StringVar(&fromDivision, "from-div", "IV", "current division")
	quoteCmd.Flags().Float64Var(&fromLP, "from-lp", 0, "current LP within the division")
	quoteCmd.Flags().StringVar(&toRank, "to", "Silver", "target rank")
	quoteCmd.Flags().StringVar(&toDivision, "to-div", "IV", "target division")
	quoteCmd.Flags().Float64Var(&toLP, "to-lp", 50, "target LP within the division")
	quoteCmd.Flags().Float64VarP(&basePrice, "base", "b", 0, "base LP price (defaults from config or rate card)")
	quoteCmd.Flags().StringVarP(&tierName, "tier", "t", "mid", "growth tier (low, mid, high)")
	quoteCmd.Flags().StringVar(&rateCardPath, "ratecard", "", "rate card file (HCL)")
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	quoteCmd.Flags().BoolVar(&noTable, "no-table", false, "hide the sampled progression table")
}

func runQuote(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg := config.Get()

	card, err := loadRateCard(cfg)
	if err != nil {
		return err
	}

	base, err := resolveBasePrice(card, cmd.Flags().Changed("base"), basePrice)
	if err != nil {
		return err
	}

	current, err := ladder.ParseState(fromRank, fromDivision, decimal.NewFromFloat(fromLP))
	if err != nil {
		return err
	}
	target, err := ladder.ParseState(toRank, toDivision, decimal.NewFromFloat(toLP))
	if err != nil {
		return err
	}

	logging.Info("computing quote",
		zap.String("current", current.String()),
		zap.String("target", target.String()),
		zap.String("tier", tierName))

	engine := quote.NewEngine()
	q, err := engine.Quote(quote.Request{
		Current:   current,
		Target:    target,
		BasePrice: base,
		Tier:      tierName,
		Rates:     card.Rates,
		Currency:  quote.Currency(card.Currency),
	})
	if err != nil {
		return err
	}

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.New(format, cfg.Output.ShowTable && !noTable)
	if err != nil {
		return err
	}

	return formatter.Render(os.Stdout, &output.QuoteReport{
		Quote: q,
		Metadata: output.ReportMetadata{
			Timestamp: start.UTC().Format(time.RFC3339),
			Duration:  time.Since(start).String(),
			Version:   Version,
		},
	})
}

// resolveBasePrice picks the base price: an explicitly supplied flag must
// be positive, otherwise the rate card's base applies.
func resolveBasePrice(card *ratecard.Card, flagSet bool, flagValue float64) (decimal.Decimal, error) {
	if !flagSet {
		return card.BasePrice, nil
	}
	if flagValue <= 0 {
		return decimal.Decimal{}, errors.Newf(errors.TypeInput, "base price must be positive, got %v", flagValue)
	}
	return decimal.NewFromFloat(flagValue), nil
}

// loadRateCard resolves pricing from, in order: the --ratecard flag, the
// configured rate card path, then config defaults.
func loadRateCard(cfg *config.Config) (*ratecard.Card, error) {
	path := rateCardPath
	if path == "" {
		path = cfg.Pricing.RateCardPath
	}
	if path != "" {
		return ratecard.Load(path)
	}

	rates, err := tier.FromMap(cfg.Pricing.Tiers)
	if err != nil {
		return nil, err
	}
	if rates.Len() == 0 {
		rates = tier.Defaults()
	}
	return &ratecard.Card{
		BasePrice: decimal.NewFromFloat(cfg.Pricing.BasePrice),
		Currency:  cfg.Pricing.Currency,
		Rates:     rates,
	}, nil
}

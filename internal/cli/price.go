package cli

import (
	"fmt"

	"github.com/coinwatch/coinprice/internal/coingecko"
	"github.com/coinwatch/coinprice/internal/errors"
	"github.com/coinwatch/coinprice/internal/mcp"
	"github.com/spf13/cobra"
)

var priceCmd = &cobra.Command{
	Use:   "price <coin> [currency]",
	Short: "Fetch the current price of a cryptocurrency",
	Long: `Fetches the current price of a cryptocurrency from CoinGecko.

The coin is a CoinGecko identifier such as "bitcoin" or "ethereum".
The currency is a fiat currency code and defaults to the configured
default currency ("usd" out of the box).`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runPrice,
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	coin := args[0]
	if coin == "" {
		return errors.InvalidParams("coin must not be empty")
	}

	currency := cfg.Defaults.Currency
	if len(args) > 1 && args[1] != "" {
		currency = args[1]
	}

	client := coingecko.NewClient(cfg.API.BaseURL, cfg.HTTPTimeout(), nil)

	quote, err := client.SimplePrice(cmd.Context(), coin, currency)
	if err != nil {
		return err
	}

	if flagJSON {
		output := map[string]interface{}{
			"coin":     quote.Coin,
			"currency": quote.Currency,
			"found":    quote.Found,
		}
		if quote.Found {
			output["price"] = quote.Price
		}
		if err := outputJSON(output); err != nil {
			return err
		}
		if !quote.Found {
			return errors.PriceNotFound(quote.Coin, quote.Currency)
		}
		return nil
	}

	if !quote.Found {
		return errors.PriceNotFound(quote.Coin, quote.Currency)
	}

	fmt.Println(mcp.FormatQuote(quote))
	return nil
}

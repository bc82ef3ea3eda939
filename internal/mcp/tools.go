package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/coinwatch/coinprice/internal/coingecko"
	"github.com/coinwatch/coinprice/internal/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

const toolGetCryptoPrice = "get-crypto-price"

// priceArgs holds validated tool arguments. Currency always has a value
// after validation, either caller-supplied or the configured default.
type priceArgs struct {
	Coin     string
	Currency string
}

// handleGetCryptoPrice implements get-crypto-price.
//
// Only the unknown-tool check is a hard fault surfaced as a protocol error.
// Every other failure mode (validation, upstream fault, price not found) is
// converted into an ordinary text result so the caller sees a readable
// message instead of a protocol fault.
func (s *Server) handleGetCryptoPrice(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if request.Params.Name != toolGetCryptoPrice {
		return nil, errors.UnknownTool(request.Params.Name)
	}

	args, err := parsePriceArgs(request, s.cfg.Defaults.Currency)
	if err != nil {
		return textErrorResult(err), nil
	}

	quote, err := s.client.SimplePrice(ctx, args.Coin, args.Currency)
	if err != nil {
		return textErrorResult(err), nil
	}

	return mcp.NewToolResultText(FormatQuote(quote)), nil
}

// parsePriceArgs validates raw tool arguments against the declared schema.
// coin must be a non-empty string; currency, if present, must be a string
// and falls back to defaultCurrency when absent or empty.
func parsePriceArgs(request mcp.CallToolRequest, defaultCurrency string) (priceArgs, error) {
	args := priceArgs{Currency: defaultCurrency}

	coin, err := request.RequireString("coin")
	if err != nil {
		return args, errors.InvalidParams("coin is required and must be a string")
	}
	if coin == "" {
		return args, errors.InvalidParams("coin must not be empty")
	}
	args.Coin = coin

	if raw, ok := request.GetArguments()["currency"]; ok {
		currency, ok := raw.(string)
		if !ok {
			return args, errors.InvalidParams("currency must be a string")
		}
		if currency != "" {
			args.Currency = currency
		}
	}

	return args, nil
}

// FormatQuote renders a lookup outcome as the tool's text body.
// Found quotes upper-case the identifiers and keep the price exactly as the
// API returned it; not-found keeps the caller's original casing.
func FormatQuote(quote *coingecko.Quote) string {
	if !quote.Found {
		return fmt.Sprintf("Could not find price for %s in %s.", quote.Coin, quote.Currency)
	}
	return fmt.Sprintf("%s = %s %s",
		strings.ToUpper(quote.Coin), quote.Price.String(), strings.ToUpper(quote.Currency))
}

// textErrorResult renders a domain failure as a normal text result.
func textErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultText("Error: " + errors.UserMessage(err))
}

// Package errors provides typed error handling for coinprice operations.
//
// Every failure mode carries a stable string code. The MCP layer uses the
// code to decide which failures become protocol faults (UNKNOWN_TOOL) and
// which are rendered as plain text, while the CLI maps codes to exit codes.
//
// Example usage:
//
//	// Creating errors
//	err := errors.UnknownTool("not-a-real-tool")
//	err := errors.InvalidParams("coin is required")
//
//	// Wrapping errors
//	err := errors.UpstreamFailed(netErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeUpstreamFailed) {
//	    // handle upstream failure
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodePriceNotFound {
//	    // handle missing price
//	}
//
//	// Stdlib compatibility
//	var cpErr *errors.Error
//	if errors.As(err, &cpErr) {
//	    fmt.Println(cpErr.Code, cpErr.Message)
//	}
package errors

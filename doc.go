// Package fundrisk provides types and pure computation functions to analyze
// the risk profile of a set of assets and the fee structure of index funds.
//
// The core functionalities include:
//   - Price History: loading a table of daily closing prices (one column per
//     asset, aligned on a shared set of dates) from CSV, with missing
//     observations treated as absent.
//   - Risk Metrics: per-asset annualized volatility, beta against a market
//     benchmark, empirical Value-at-Risk, Sharpe ratio and maximum drawdown,
//     all recomputed on demand from the daily return series.
//   - Fee Analysis: normalizing provider expense-ratio values into decimal
//     fractions, bucketing them into fee categories and computing the annual
//     cost of holding a fund.
//
// This package serves as the foundational logic for the `frisk` command-line
// tool; fetching data from the market-data provider lives in the yahoo
// subpackage and report formatting in the renderer subpackage.
package fundrisk

// SPDX-License-Identifier: MIT

// Package config loads the pricing scenario used by the bsfdm command.
//
// Sources, lowest precedence first:
//
//  1. Built-in defaults: the reference scenario S = K = 20, r = 3%, q = 4%,
//     σ = 80%, T = 1 on dx = 0.05, dτ = 0.00125, SOR ω = 1.2 / 15 / 1e-6.
//  2. An optional YAML file.
//  3. Environment variables prefixed BSFDM_, with '.' replaced by '_'
//     (BSFDM_MARKET_VOLATILITY, BSFDM_GRID_DX, BSFDM_LOG_LEVEL, ...).
//
// Load validates the merged result, so a returned *Config is always usable.
package config

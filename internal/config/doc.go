// Package config loads goodhex settings.
//
// Settings come from three layers, later ones overriding earlier ones:
//
//  1. Built-in defaults (Default)
//  2. The configuration file, TOML or YAML by extension
//     (~/.config/goodhex/config.toml unless -config names another)
//  3. GOODHEX_* environment variables
//
// Command line flags are applied by the caller on top of the result.
//
// # Configuration Files
//
//	# ~/.config/goodhex/config.toml
//	[view]
//	width = 0x10
//
//	[annotations]
//	sets = ["default", "structures", "strings"]
//	nonPrintableTag = 8
//
//	[palette]
//	header = "red on black"
//	tags = ["default", "red on black", "bold green"]
//
// Palette entries are "<fg>", "<fg> on <bg>" or either form preceded by
// attributes (bold, dim, underline, reverse). Colors are names, palette
// indexes or #rrggbb.
//
// The watcher subpackage reports edits to the file so a running viewer can
// reload its palette.
package config

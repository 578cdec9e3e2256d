// Package config loads devicedeck's TOML configuration.
//
// # Configuration Discovery
//
// Load resolves the file in this order:
//
//  1. The explicit path (the --config flag)
//  2. The DEVICEDECK_CONFIG environment variable (a .env file in the
//     working directory is loaded before flags are read)
//  3. ~/.config/devicedeck/config.toml
//
// A missing file yields the defaults. A file that exists but cannot be
// parsed is an error.
//
// # TOML Format
//
//	catalog_path    = "~/catalogs/devices.yaml"  # empty: built-in catalog
//	feed_url        = "http://catalog.local:8080" # overrides catalog_path
//	reload_seconds  = 60                          # 0 disables reloads
//	currency_symbol = "₹"
//	log_file        = "~/.local/share/devicedeck/devicedeck.log"
//	log_level       = "info"                      # debug, info, warn, error
//
// Every field is optional. reload_seconds defaults to 60 when feed_url is
// set and to 0 otherwise. Paths get tilde expansion and are made absolute.
package config

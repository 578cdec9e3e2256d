// Package app is the composition root for devicedeck.
//
// # Startup
//
// Setup wires the pieces shared by the TUI and the CLI subcommands:
//
//  1. Load configuration (config.Load)
//  2. Build the zap logger with its rotating file (logging.New)
//  3. Pick the catalog source: the feed when feed_url is set, else the
//     catalog file, else the built-in catalog
//  4. Load the catalog once and record the result in a state.Store
//  5. Create the compare.Manager and subscribe the change logger
//
// Run then starts the reloader and hands everything to ui.Run, which blocks
// until the user quits or the context is cancelled.
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> Setup()            config, logger, first load, manager
//	       ├─────> StartReloader()    background catalog refresh
//	       └─────> ui.Run()           TUI (blocks)
//
// # Reloading
//
// The reloader re-reads the source every reload interval and swaps the
// catalog store contents on success. A failure keeps the previous catalog,
// records the error for the header, and retries with exponential backoff
// (base * 2^failures, capped at 30s unless the interval itself is longer).
// The compare list is never touched by reloads: it holds its own copies of
// the products the user picked.
//
// # Error Handling
//
// Fatal errors (returned from Setup):
//   - Invalid config file or log level
//   - A configured catalog file that cannot be read or parsed
//
// Recoverable errors (logged, reloading continues):
//   - A feed that is down at startup (the built-in catalog is served)
//   - Reload failures
package app

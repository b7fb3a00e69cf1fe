// Package app is the composition root for marquee.
//
// Run loads the config file, applies command-line overrides, opens the log
// file, builds the catalog source, restores the saved theme and then hands
// everything to ui.Run, which blocks until the user quits.
//
// Startup order:
//
//  1. config.Load (missing file means defaults, a malformed file is fatal)
//  2. flag overrides for source, log file and level
//  3. logging.Open (falls back to a discarding logger)
//  4. catalog.NewSource (an empty or invalid location is fatal)
//  5. prefs.Load (never fails)
//  6. ui.Run
//
// Load failures after startup are not errors here; the UI shows them in its
// Error view and offers a retry.
package app

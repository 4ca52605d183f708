// Command tidy is the CLI front end for the file-organizing engine.
//
// It wires configuration, logging, the engine, the watch scheduler, and the
// pass-history store together, and renders reports for humans. Other callers
// (a GUI shell, scripts) consume the same engine through the internal
// packages.
package main

// Package log sets up markfix's two output channels: a zerolog diagnostic
// logger carried through context.Context, and a pterm based UserLogger for
// human-readable warnings and errors on stderr.
package log

// Package runtimeinfo provides the Timer and peak-memory reporting every
// edsctl subcommand prints to stderr on exit, mirroring the original
// tools' Timer class and get_peak_memory_mb() (common.hpp / common.cpp).
package runtimeinfo

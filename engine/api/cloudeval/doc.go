// Package cloudeval provides a Lichess Cloud Eval API engine for enginehost.
//
// Unlike the uci and xboard adapters, cloudeval communicates via HTTPS rather
// than subprocess stdio. This package implements the enginehost.Engine
// interface directly.
package cloudeval

// Package lineproc runs an engine subprocess as a stream of text lines.
//
// It covers the lifecycle half of implementing enginehost.Proc: spawn
// the engine with pipes attached, pump its stdout line by line, write
// command lines to stdin, and shut down with a bounded grace period.
// What the lines mean is up to the caller; the protocol grammar lives
// with whoever consumes the stream.
//
// A Dialer implementation typically starts a Runner around the prepared
// command, performs the protocol handshake over Send and Lines, and
// wraps the Runner in its Proc:
//
//	runner, err := lineproc.Start(cmd)
//	if err != nil {
//		return nil, err
//	}
//	if err := runner.Send("uci"); err != nil {
//		return nil, err
//	}
//	// consume runner.Lines() until the handshake completes
package lineproc

// Package services implements the core business logic for Immutify.
//
// Services implement the driving ports and depend only on domain
// types and driven ports. The commitment engine and verifier are
// pure, synchronous and reentrant; the thought and token services
// hold per-session state and are not safe for concurrent use by
// multiple callers.
package services

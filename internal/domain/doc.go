// Package domain contains the core domain model for FundingCall.
//
// The domain is transport- and persistence-agnostic: it does not depend on JSON decoding,
// net/http, or the filesystem. Sources and adapters map into these types, and the engine
// packages under usecase operate on them as plain values.
package domain

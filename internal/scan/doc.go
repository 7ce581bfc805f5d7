// Package scan reads the compact array payloads carried by menu update events.
//
// # Overview
//
// Update events carry lists as flat text such as ["01.02.2025","02.02.2025"]
// or [812,813,-1]. The functions here pull the elements out of that text
// without validating it as JSON:
//
//   - Strings returns the quote-delimited runs, in order.
//   - Integers returns the signed decimal numbers, in order.
//
// # Failure Model
//
// Neither function fails. A truncated payload yields the elements that were
// complete before the cut, an absent delimiter yields an empty result, and
// anything beyond the requested capacity is dropped silently. Callers decide
// the capacity from what they can display, not from what the payload claims.
//
// # Limits
//
// There is no escape handling: a backslash is an ordinary character and a
// quote can never be part of an element. Producers are expected to keep quotes
// out of their values (see bridge.EncodeStrings).
package scan

// Package web serves the browser UI for the assistant: a name gate,
// the question form with language selection, the conversation history
// with expandable source passages, and a daily wisdom banner.
//
// State is per-browser, held in memory and keyed by a session cookie.
// Pipeline errors surface as a banner on the next page load; the
// conversation itself is unaffected.
package web

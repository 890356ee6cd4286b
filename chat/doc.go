// Package chat implements the conversational query pipeline and per-user
// session state.
//
// The Engine type answers a single question: it embeds the question,
// retrieves the closest chunks from the vector store, generates an
// answer conditioned on them, and translates the result when a
// non-native language is selected. The Session type layers conversation
// state on top: a name gate before the first question, an ordered turn
// history, and blank-input handling.
package chat

// Copyright 2026 Prajna Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package chat

import (
	"strings"

	"github.com/prajna-labs/prajna/ai"
	"github.com/prajna-labs/prajna/core"
)

const systemPromptHeader = `You are a knowledgeable assistant for questions about the Bhagavad Gita and the Yoga Sutras of Patanjali.
Answer the question using the passages below. If the passages do not contain the answer, say so honestly rather than inventing one.

Passages:
`

// buildMessages assembles the model conversation: a system message
// stuffed with the retrieved passages, the most recent history turns as
// alternating user/assistant messages, and the question last.
func buildMessages(results []*core.SearchResult, history []*core.ConversationTurn, question string, window int) []ai.Message {
	var sb strings.Builder
	sb.WriteString(systemPromptHeader)
	for i, result := range results {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(result.Chunk.Text)
	}

	messages := []ai.Message{
		{Role: ai.RoleSystem, Text: sb.String()},
	}

	if window > 0 && len(history) > window {
		history = history[len(history)-window:]
	}
	for _, turn := range history {
		messages = append(messages,
			ai.Message{Role: ai.RoleUser, Text: turn.Question},
			ai.Message{Role: ai.RoleAssistant, Text: turn.Answer},
		)
	}

	messages = append(messages, ai.Message{Role: ai.RoleUser, Text: question})
	return messages
}

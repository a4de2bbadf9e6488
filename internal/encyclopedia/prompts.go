package encyclopedia

import "fmt"

const jsonOnlyRule = `Respond with a single JSON object and nothing else.
No markdown fences, no commentary before or after the object.`

func buildAmbiguitySystemPrompt() string {
	return `You decide whether an encyclopedia topic has multiple well-known,
clearly distinct senses (like "Mercury" the planet, element, and god).
` + jsonOnlyRule + `
Schema:
{"is_ambiguous": bool, "meanings": [{"title": string, "description": string}]}
Each title must be a more specific topic usable as its own lookup,
e.g. "Mercury (planet)". If the topic has one dominant sense, return
{"is_ambiguous": false, "meanings": []}.`
}

func buildAmbiguityUserPrompt(topic string) string {
	return fmt.Sprintf("Topic: %s", topic)
}

func buildDefinitionSystemPrompt() string {
	return `You write concise, engaging encyclopedia entries.
` + jsonOnlyRule + `
Schema:
{"summary": string, "key_concepts": [{"title": string, "description": string}]}
The summary is 2-4 sentences. Provide 2-3 key concepts, each a single
word or short phrase with a one-sentence description.`
}

func buildDefinitionUserPrompt(topic string) string {
	return fmt.Sprintf("Write the encyclopedia entry for: %s", topic)
}

func buildComparisonSystemPrompt() string {
	return `You write structured comparisons of two encyclopedia topics.
` + jsonOnlyRule + `
Schema:
{"introduction": string,
 "similarities": [{"title": string, "description": string}],
 "differences": [{"title": string, "description": string}],
 "conclusion": string}
Keep every description to one sentence.`
}

func buildComparisonUserPrompt(topicA, topicB string) string {
	return fmt.Sprintf("Compare %q with %q.", topicA, topicB)
}

func buildArtSystemPrompt() string {
	return `You draw small ASCII art for encyclopedia topics.
` + jsonOnlyRule + `
Schema:
{"art": string, "text": string}
"art" is a drawing of at most 12 lines and 40 columns, with embedded
newlines. "text" is an optional stylized one-line rendering of the
topic name and may be empty.`
}

func buildArtUserPrompt(topic string) string {
	return fmt.Sprintf("Draw ASCII art for: %s", topic)
}

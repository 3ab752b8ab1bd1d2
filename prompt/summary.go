package prompt

func GetSummarySystemPrompt() string {
	return `You are an expert developer. Summarize the staged git diff into a concise multi-line summary suitable for a changelog.
Use bullets or short paragraphs. Be factual and list the key changes and the affected files.`
}

func GetSummaryUserPrompt(diff string) string {
	return `Here is the git diff:
` + diff + `

Reply with a pull request description ready to copy and paste, without any extra commentary.`
}

package core

// exampleTexts seed the input with one sentence per typical emotion
var exampleTexts = []string{
	"I really don't know what to do about the situation, it feels overwhelming...",
	"Wow! That is absolutely fantastic news, I can't wait to see it!",
	"This is completely unacceptable service, I want a refund now!",
	"I'm so grateful for all the support, you've made my day!",
	"I'm worried about what might happen next, this is concerning.",
}

// Examples returns a copy of the curated example sentences
func Examples() []string {
	out := make([]string, len(exampleTexts))
	copy(out, exampleTexts)
	return out
}

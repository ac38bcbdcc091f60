package judgment

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

const (
	minReasonChars = 10
	minReasonWords = 5
	maxReasonWords = 300
)

var injectionPhrases = []string{
	"ignore previous", "ignore all previous", "ignore the above", "ignore instructions",
	"forget the", "forget all", "new instructions", "system:", "system prompt",
	"you are now", "pretend you are", "imagine you are", "your new role",
	"root access", "approve this", "must approve", "always approve",
	"set status to approved", "return approved", "status: approved",
	"skip validation", "turn off", "prompt injection",
	"###", "[system]", "<system>", "{{system}}", "assistant:", "[assistant]", "<assistant>",
	"ignore rules", "break rules", "special case",
	"approved = true", "status = approved", "confidence = 100",
	"instead of rejecting", "do not reject", "never reject",
	"you must not", "cannot reject", "should not reject",
	// code and script fragments
	"select *", "drop table", "exec(", "execute(", "<script>", "javascript:", "eval(",
	"function(", "print(", "console.log", "alert(", "require(", "__import__", "os.system",
	// delimiters
	`"""`, "'''", "```", "---end---", "---stop---", "</prompt>", "</instruction>", "</system>",
	"\n\n\n\n", "====", "----", "####",
	// prompt boundaries and role reassignment
	"end of prompt", "new prompt", "system message", "assistant message", "user message", "prompt ends",
	"you are a", "your role is", "you should act", "you will now", "from now on", "starting now",
}

var (
	injectionWords = regexp.MustCompile(`\b(act as|disregard|roleplay|override|overwrite|admin|administrator|sudo|bypass|disable|jailbreak|exploit|exception|sql|import|subprocess|shell|bash)\b|\b(document|module)\.\w`)

	injectionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bselect\b.*\bfrom\b|\bdrop\b.*\btable\b|\bexec\b.*\(`),
		regexp.MustCompile(`\bdelete\b.*\bfrom\b|\binsert\b.*\binto\b`),
		regexp.MustCompile(`;\s*drop\b|;\s*delete\b|;\s*update\b`),
		regexp.MustCompile(`<script[^>]*>|<iframe[^>]*>|<object[^>]*>`),
		regexp.MustCompile(`javascript:|data:text/html|vbscript:`),
	}

	consonantRun = regexp.MustCompile(`[bcdfghjklmnpqrstvwxyz]{6,}`)
	vowel        = regexp.MustCompile(`[aeiouAEIOU]`)
)

var keyboardMash = []string{"asdf", "qwert", "zxcv", "hjkl", "jkl;", "12345", "abcdefg", "lkjhg"}

// Screen applies the input safety checks in priority order and returns the
// verdict of the first one that matches. ok is false when the text is clean
// and may be sent to the external service.
func Screen(reasonText string) (Judgment, bool) {
	text := norm.NFKC.String(reasonText)

	if text != "" && isInjection(text) {
		return Judgment{
			ReasonCategory:    CategorySecurityViolation,
			RiskFlags:         []string{"prompt_injection_detected", "security_violation", "manipulation_attempt"},
			RecommendedAction: ActionReject,
			Rationale:         "Rejected: the description contains instructions or markup aimed at manipulating the evaluation.",
		}, true
	}

	if text != "" && isGibberish(text) {
		return Judgment{
			ReasonCategory:    CategoryInvalidInput,
			RiskFlags:         []string{"random_text", "no_meaningful_content", "gibberish_detected"},
			RecommendedAction: ActionReject,
			Rationale:         "Rejected: the description has no meaningful content.",
		}, true
	}

	trimmed := strings.TrimSpace(text)
	if utf8.RuneCountInString(trimmed) < minReasonChars {
		return Judgment{
			ReasonCategory:    CategoryInsufficientInfo,
			RiskFlags:         []string{"insufficient_description", "too_short"},
			RecommendedAction: ActionReject,
			Rationale:         "Rejected: the description is shorter than 10 characters.",
		}, true
	}

	words := len(strings.Fields(trimmed))
	if words < minReasonWords {
		return Judgment{
			ReasonCategory:    CategoryInsufficientInfo,
			RiskFlags:         []string{"insufficient_words", "too_few_words"},
			RecommendedAction: ActionReject,
			Rationale:         "Rejected: the description needs at least 5 words.",
		}, true
	}
	if words > maxReasonWords {
		return Judgment{
			ReasonCategory:    CategoryExcessiveInfo,
			RiskFlags:         []string{"excessive_words", "potential_manipulation", "too_verbose"},
			RecommendedAction: ActionReject,
			Rationale:         "Rejected: the description exceeds 300 words.",
		}, true
	}

	return Judgment{}, false
}

func isInjection(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range injectionPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	if injectionWords.MatchString(lower) {
		return true
	}

	if strings.Count(text, "<")+strings.Count(text, ">")+
		strings.Count(text, "{")+strings.Count(text, "}")+
		strings.Count(text, "[")+strings.Count(text, "]")+
		strings.Count(text, "`") > 4 {
		return true
	}

	for _, re := range injectionPatterns {
		if re.MatchString(lower) {
			return true
		}
	}

	if strings.Count(text, "!") > 3 || strings.Count(text, "?") > 3 {
		return true
	}

	// Line breaks are limited by the newline count below; every other control
	// character, tab included, is rejected.
	for _, r := range text {
		if r != '\n' && r != '\r' && unicode.IsControl(r) {
			return true
		}
	}

	return strings.Count(text, "\n") > 5
}

func isGibberish(text string) bool {
	text = strings.TrimSpace(text)
	total := utf8.RuneCountInString(text)
	if total < 5 {
		return true
	}

	allowed := 0
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsSpace(r) || strings.ContainsRune(".,!?'-", r) {
			allowed++
		}
	}
	if float64(allowed)/float64(total) < 0.6 {
		return true
	}

	if longestRun(text) >= 6 {
		return true
	}

	words := strings.Fields(text)
	if len(words) > 2 {
		long, withVowels := 0, 0
		for _, w := range words {
			if utf8.RuneCountInString(w) <= 2 {
				continue
			}
			long++
			if vowel.MatchString(w) {
				withVowels++
			}
		}
		if long > 0 && float64(withVowels)/float64(long) < 0.4 {
			return true
		}
	}

	lower := strings.ToLower(text)
	if total < 25 {
		for _, p := range keyboardMash {
			if strings.Contains(lower, p) {
				return true
			}
		}
	}

	if consonantRun.MatchString(lower) {
		return true
	}

	if len(words) > 3 {
		same := true
		for _, w := range words[1:] {
			if w != words[0] {
				same = false
				break
			}
		}
		if same {
			return true
		}
	}
	return false
}

func longestRun(s string) int {
	longest, run := 0, 0
	var prev rune = -1
	for _, r := range s {
		if r == prev {
			run++
		} else {
			run = 1
			prev = r
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

package crypto

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*()-_=+[]{};:,.<>/?|"
)

// enabledClasses returns the alphabets selected by opts in canonical order:
// uppercase, lowercase, numbers, symbols.
func enabledClasses(opts GeneratorOptions) []string {
	classes := make([]string, 0, 4)
	if opts.Uppercase {
		classes = append(classes, uppercaseChars)
	}
	if opts.Lowercase {
		classes = append(classes, lowercaseChars)
	}
	if opts.Numbers {
		classes = append(classes, numberChars)
	}
	if opts.Symbols {
		classes = append(classes, symbolChars)
	}
	return classes
}

// activeAlphabet concatenates the enabled classes. With nothing selected it
// falls back to lowercase.
func activeAlphabet(classes []string) string {
	if len(classes) == 0 {
		return lowercaseChars
	}
	var pool string
	for _, c := range classes {
		pool += c
	}
	return pool
}

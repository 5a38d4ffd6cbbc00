package crypto

// GeneratorOptions configures the password generator.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 16 characters drawn from upper, lower and digits.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   false,
	}
}

// Generate creates a random password using crypto/rand.
//
// It never fails. With no character class selected it draws from the
// lowercase alphabet, and a length of zero or less yields "".
func Generate(opts GeneratorOptions) string {
	return GenerateWithSource(opts, SecureSource)
}

// GenerateWithSource is Generate with an explicit random source.
//
// Every selected class is represented in the output whenever opts.Length is
// at least the number of selected classes.
func GenerateWithSource(opts GeneratorOptions, src Source) string {
	classes := enabledClasses(opts)
	pool := activeAlphabet(classes)

	// One character per selected class. They are drawn even when the length
	// leaves no room to place them.
	required := make([]byte, len(classes))
	for i, c := range classes {
		required[i] = randChar(src, c)
	}

	length := max(opts.Length, 0)
	result := make([]byte, length)
	for i := range result {
		result[i] = randChar(src, pool)
	}

	copy(result, required)

	shuffle(src, result)

	return string(result)
}

// randChar picks a uniformly random character from charset.
func randChar(src Source, charset string) byte {
	return charset[src.IntN(len(charset))]
}

// shuffle performs an in-place Fisher-Yates shuffle.
func shuffle(src Source, data []byte) {
	for i := len(data) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		data[i], data[j] = data[j], data[i]
	}
}

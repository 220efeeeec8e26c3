package vocab

// Category names used by the built-in deck.
const (
	CategoryGreetings = "greetings"
	CategoryFamily    = "family"
	CategoryFood      = "food"
)

// Builtin returns the compiled-in deck.
func Builtin() []Record {
	return []Record{
		// Greetings
		{Source: "slaw", Target: "hello", Category: CategoryGreetings},
		{Source: "roj bash", Target: "good morning", Category: CategoryGreetings},
		{Source: "choni", Target: "how are you", Category: CategoryGreetings},

		// Family
		{Source: "bawk", Target: "father", Category: CategoryFamily},
		{Source: "dayik", Target: "mother", Category: CategoryFamily},
		{Source: "brak", Target: "brother", Category: CategoryFamily},
		{Source: "xoshawistim", Target: "my love", Category: CategoryFamily},

		// Food
		{Source: "nan", Target: "bread", Category: CategoryFood},
		{Source: "aw", Target: "water", Category: CategoryFood},
		{Source: "mast", Target: "yogurt", Category: CategoryFood},
	}
}

// BuiltinStore returns a store over the compiled-in deck.
func BuiltinStore() *Store {
	return NewStore(Builtin())
}

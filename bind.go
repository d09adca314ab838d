package hxinject

// Bind fixes the second argument of fn to whatever get returns at call
// time. It is the positional counterpart of Inject for components taking
// plain arguments:
//
//	message := func(key string, lang language.Tag) Markup { ... }
//	myMessage := hxinject.Bind(message, langs.Current)
//	myMessage("welcome") // uses the language current at this call
func Bind[A, B, O any](fn func(A, B) O, get func() B) func(A) O {
	return func(a A) O {
		return fn(a, get())
	}
}

// Apply fixes the only argument of fn, leaving a function of no arguments.
//
//	welcomeMessage := hxinject.Apply(myMessage, "welcome")
func Apply[A, O any](fn func(A) O, a A) func() O {
	return func() O {
		return fn(a)
	}
}

// Const returns a function of no arguments that always returns v.
func Const[O any](v O) func() O {
	return func() O {
		return v
	}
}

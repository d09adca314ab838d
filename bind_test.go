package hxinject

import "testing"

func TestBindResolvesAtCallTime(t *testing.T) {
	lang := "en"
	message := func(key, lang string) string {
		return key + "@" + lang
	}

	myMessage := Bind(message, func() string { return lang })

	if got := myMessage("welcome"); got != "welcome@en" {
		t.Errorf("myMessage() = %q, want welcome@en", got)
	}
	lang = "fr"
	if got := myMessage("welcome"); got != "welcome@fr" {
		t.Errorf("myMessage() = %q, want welcome@fr", got)
	}
}

func TestApply(t *testing.T) {
	calls := 0
	double := func(n int) int {
		calls++
		return n * 2
	}

	thunk := Apply(double, 21)
	if calls != 0 {
		t.Fatal("Apply called fn eagerly")
	}
	if got := thunk(); got != 42 {
		t.Errorf("thunk() = %d, want 42", got)
	}
	if got := thunk(); got != 42 {
		t.Errorf("thunk() second call = %d, want 42", got)
	}
}

func TestConst(t *testing.T) {
	c := Const(Markup("<article>Lorem ipsum...</article>"))
	if got := c(); got != "<article>Lorem ipsum...</article>" {
		t.Errorf("Const() = %q", got)
	}
}

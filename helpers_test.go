package hxinject

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/a-h/templ"
)

type bannerProps struct {
	Text string `prop:"text,required"`
}

type bannerRenderer struct{}

func (bannerRenderer) Render(_ context.Context, props bannerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div class="banner">`+props.Text+`</div>`)
		return err
	})
}

type failingRenderer struct{ err error }

func (r failingRenderer) Render(_ context.Context, _ bannerProps) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return r.err
	})
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, testHeader, headerProps{WelcomeMessage: "Hi"})
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if got := buf.String(); got != "<header>Hi</header>" {
		t.Errorf("Write() wrote %q", got)
	}
}

func TestWriteNothingOnError(t *testing.T) {
	var buf bytes.Buffer
	err := Write(context.Background(), &buf, testHeader, headerProps{})
	if !IsMissingProperty(err) {
		t.Fatalf("Write() error = %v, want ErrMissingProperty", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Write() wrote %q on error", buf.String())
	}
}

func TestTemplEmbedsInjectedComponent(t *testing.T) {
	ctx := context.Background()
	tmpl := testTemplate(t)

	tc := Templ[pageProps](tmpl, pageProps{Content: "adios"})
	got, err := RenderString(ctx, tc)
	if err != nil {
		t.Fatalf("RenderString() error = %v", err)
	}
	want := Markup("<div><header>Welcome!</header>adios<footer>Copyright - 2021</footer></div>")
	if got != want {
		t.Errorf("RenderString() = %q, want %q", got, want)
	}
}

func TestFromRenderer(t *testing.T) {
	ctx := context.Background()
	banner := FromRenderer[bannerProps]("banner", bannerRenderer{})

	got, err := banner.Render(ctx, bannerProps{Text: "Sale"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got != `<div class="banner">Sale</div>` {
		t.Errorf("Render() = %q", got)
	}

	if _, err := banner.Render(ctx, bannerProps{}); !IsMissingProperty(err) {
		t.Errorf("Render() error = %v, want ErrMissingProperty", err)
	}

	// templ components can be injected like any other
	sale := MustInject(banner, bannerProps{Text: "Sale"})
	if err := sale.Check(); err != nil {
		t.Errorf("Check() = %v", err)
	}
	if got, err := sale.Call(ctx); err != nil || got != `<div class="banner">Sale</div>` {
		t.Errorf("Call() = %q, %v", got, err)
	}
}

func TestFromRendererError(t *testing.T) {
	renderErr := errors.New("boom")
	c := FromRenderer[bannerProps]("broken", failingRenderer{err: renderErr})

	_, err := c.Render(context.Background(), bannerProps{Text: "x"})
	if !errors.Is(err, renderErr) {
		t.Errorf("Render() error = %v, want %v", err, renderErr)
	}
}

func TestMustRenderPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustRender() did not panic")
		}
		err, ok := r.(error)
		if !ok || !IsMissingProperty(err) {
			t.Errorf("panic value = %v, want missing property error", r)
		}
	}()
	MustRender(context.Background(), testFooter, footerProps{})
}

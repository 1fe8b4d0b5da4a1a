package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"

	webi18n "github.com/vinylcourses/coursehub/internal/services/web/platform/i18n"
)

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile/view", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, ModulePage{
		TitleKey:   webi18n.KeyProfileTitle,
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if body != `<section id="fragment-root">ok</section>` {
		t.Fatalf("body = %q, want bare fragment", body)
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, ModulePage{
		TitleKey: webi18n.KeyProfileTitle,
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="main-content"`, `id="fragment-root"`, `<title>My Profile | Vinyl Courses</title>`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageUsesProvidedLocalizer(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile?lang=pt-BR", nil)
	loc, lang := webi18n.ResolveLocalizer(nil, req)
	rr := httptest.NewRecorder()

	if err := WriteModulePage(rr, req, ModulePage{TitleKey: webi18n.KeyProfileTitle, Loc: loc, Lang: lang}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if !strings.Contains(rr.Body.String(), "<title>Meu Perfil | Vinyl Courses</title>") {
		t.Fatalf("expected localized title: %q", rr.Body.String())
	}
	if rr.Header().Get("Set-Cookie") != "" {
		t.Fatalf("expected no language cookie when localizer is provided")
	}
}

func TestWriteModulePageReturnsRenderErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, req, ModulePage{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteModulePage() error = %v, want %v", err, boom)
	}
}
